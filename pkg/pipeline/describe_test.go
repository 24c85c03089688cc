package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripweave/tripweave/pkg/schedule"
)

func TestDescriptionResolver(t *testing.T) {
	r := newDescriptionResolver(schedule.Descriptions{
		Entries: []schedule.DescriptionEntry{
			{Key: "淺草寺", Description: "寺院"},
			{Key: "淺草", Description: "街區"},
			{Key: "明治神宮", Description: "神社"},
		},
		OverridesByID: map[string]string{
			"forced-id": "強制說明",
		},
	})

	// Forced override wins over everything.
	assert.Equal(t, "強制說明", r.resolve("forced-id", "淺草寺", ""))

	// Exact title match beats the place.
	assert.Equal(t, "寺院", r.resolve("x", "淺草寺", "明治神宮"))

	// Exact place match when the title misses.
	assert.Equal(t, "神社", r.resolve("x", "新年參拜", "明治神宮"))

	// Contains fallback prefers the longest key.
	assert.Equal(t, "寺院", r.resolve("x", "參觀淺草寺本堂", ""))
	assert.Equal(t, "街區", r.resolve("x", "淺草散步", ""))

	// Nothing matches.
	assert.Equal(t, "", r.resolve("x", "自由活動", ""))

	// Empty strings never match the dictionary.
	assert.Equal(t, "", r.resolve("x", "", ""))
}
