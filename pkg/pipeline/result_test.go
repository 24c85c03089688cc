package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tripweave/tripweave/pkg/trip"
)

func TestResultSummary(t *testing.T) {
	r := NewResult()
	assert.False(t, r.IsSuccess(), "no trip yet")

	r.Trip = &trip.Trip{}
	r.Metadata.Stats.Days = 6
	r.Metadata.Stats.Activities = 38
	r.Metadata.Stats.OverridesMatched = 21
	r.Warnf("duplicate activity slug, disambiguated as %q", "x-2")
	r.Finalize()

	assert.True(t, r.IsSuccess())
	assert.Equal(t, "Reconciled 38 activities across 6 days (21 overrides matched, 1 warnings)", r.Summary())
	assert.False(t, r.Metadata.EndTime.Before(r.Metadata.StartTime))
	assert.NotEmpty(t, r.Duration())
}
