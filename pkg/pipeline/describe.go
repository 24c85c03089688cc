package pipeline

import (
	"sort"
	"strings"

	"github.com/tripweave/tripweave/pkg/normalize"
	"github.com/tripweave/tripweave/pkg/schedule"
)

// descriptionResolver matches activities to their descriptions with a
// three-step fallback: forced per-id override, exact normalized key match
// on title then place, and finally a contains match where the longest
// dictionary key wins.
type descriptionResolver struct {
	byKey     map[string]string
	entries   []schedule.DescriptionEntry
	overrides map[string]string
}

func newDescriptionResolver(d schedule.Descriptions) *descriptionResolver {
	r := &descriptionResolver{
		byKey:     make(map[string]string, len(d.Entries)),
		overrides: d.OverridesByID,
	}
	for _, e := range d.Entries {
		key := normalize.ForDescriptionMatch(e.Key)
		if key == "" {
			continue
		}
		r.entries = append(r.entries, schedule.DescriptionEntry{Key: key, Description: e.Description})
		r.byKey[key] = e.Description
	}
	// Longest keys first so the contains fallback prefers the most
	// specific entry.
	sort.SliceStable(r.entries, func(i, j int) bool {
		return len(r.entries[i].Key) > len(r.entries[j].Key)
	})
	return r
}

func (r *descriptionResolver) resolve(id, title, place string) string {
	if desc, ok := r.overrides[id]; ok {
		return desc
	}

	titleKey := normalize.ForDescriptionMatch(title)
	placeKey := normalize.ForDescriptionMatch(place)

	if desc, ok := r.byKey[titleKey]; ok && titleKey != "" {
		return desc
	}
	if desc, ok := r.byKey[placeKey]; ok && placeKey != "" {
		return desc
	}

	for _, e := range r.entries {
		if (titleKey != "" && strings.Contains(titleKey, e.Key)) ||
			(placeKey != "" && strings.Contains(placeKey, e.Key)) {
			return e.Description
		}
	}
	return ""
}
