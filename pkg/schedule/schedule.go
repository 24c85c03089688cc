// Package schedule defines the raw input tables consumed by the
// reconciliation pipeline: the hand-authored trip schedule plus the
// loosely-keyed side tables (attachment overrides, file inventory, gmail
// reservations, title aliases, descriptions).
//
// These types mirror the irregular source data faithfully: dates are locale
// strings with weekday suffixes, format specs are free text that may be a
// single string or a list, and map links are comma-joined mixed content.
// Interpretation happens downstream; loading never rejects odd values.
package schedule

import (
	"github.com/tripweave/tripweave/pkg/normalize"
)

// Trip is the raw, hand-authored trip schedule.
type Trip struct {
	Name string `json:"name" yaml:"name"`
	Days []Day  `json:"days" yaml:"days"`
}

// Day is one raw schedule day.
type Day struct {
	// Date is a locale date string, slash separated, optionally with a
	// parenthesized weekday: "2025/12/31 (三)".
	Date       string     `json:"date" yaml:"date"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Activity is one raw schedule entry. Immutable input.
type Activity struct {
	Time  string `json:"time" yaml:"time"`
	Title string `json:"title" yaml:"title"`

	// Reserved is the schedule's own reservation label ("是否預約"
	// column); the override table's kind label takes precedence.
	Reserved string `json:"reserved,omitempty" yaml:"reserved,omitempty"`

	// Format is the free-text "reservation format" spec, a string or a
	// list of strings with heterogeneous encodings.
	Format StringOrList `json:"format,omitempty" yaml:"format,omitempty"`

	ReservationTime string `json:"reservation_time,omitempty" yaml:"reservation_time,omitempty"`

	Place string `json:"place,omitempty" yaml:"place,omitempty"`

	// MapLink is the raw map-link field: a string or list where each
	// string may encode multiple comma-separated tokens.
	MapLink StringOrList `json:"map_link,omitempty" yaml:"map_link,omitempty"`

	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// OverrideEntry is one row of the hand-curated attachment override list: a
// human assertion that an activity has documents of a given kind.
type OverrideEntry struct {
	Date  string `json:"date" yaml:"date"`
	Title string `json:"title" yaml:"title"`

	// Kind is the declared attachment kind label ("入住憑證").
	Kind string `json:"kind" yaml:"kind"`

	// Format is the declared file format and count spec ("PDF * 2").
	Format string `json:"format" yaml:"format"`
}

// Key returns the entry's normalized join key.
func (e OverrideEntry) Key() string {
	return normalize.Key(e.Date, normalize.BaseTitle(e.Title))
}

// GmailReservation is one row of the email-reservation index.
type GmailReservation struct {
	Date    string `json:"date" yaml:"date"`
	Title   string `json:"title" yaml:"title"`
	Subject string `json:"subject" yaml:"subject"`
}

// Key returns the reservation's normalized join key.
func (r GmailReservation) Key() string {
	return normalize.Key(r.Date, normalize.BaseTitle(r.Title))
}

// Inventory is the raw attachment inventory: what actually exists on
// storage, folder by folder, plus the manual bridge for folder-naming
// mismatches.
type Inventory struct {
	// Folders maps a folder identifier ("2026-01-01__東京灣遊船午餐") to
	// its file listing. File order within a folder is the authoring
	// contract: slot labels and values are assigned positionally.
	Folders map[string]Folder `json:"folders" yaml:"folders"`

	// ManualFolders bridges known folder-naming mismatches: an exact
	// "date__title" activity key mapped to the real folder name.
	ManualFolders map[string]string `json:"manual_folders,omitempty" yaml:"manual_folders,omitempty"`
}

// Folder is the raw file listing of one attachment folder.
type Folder struct {
	PDF []string `json:"pdf,omitempty" yaml:"pdf,omitempty"`
	QR  []string `json:"qr,omitempty" yaml:"qr,omitempty"`
}

// DescriptionEntry is one row of the description dictionary.
type DescriptionEntry struct {
	Key         string `json:"key" yaml:"key"`
	Description string `json:"description" yaml:"description"`
}

// Descriptions is the description dictionary plus per-id forced overrides.
type Descriptions struct {
	Entries []DescriptionEntry `json:"entries" yaml:"entries"`

	// OverridesByID force a description for a specific activity id,
	// winning over any key-based match.
	OverridesByID map[string]string `json:"overrides_by_id,omitempty" yaml:"overrides_by_id,omitempty"`
}

// Tables bundles every input table for one pipeline run. All tables are
// in-memory snapshots; the pipeline performs no I/O after loading.
type Tables struct {
	Trip         Trip
	Overrides    []OverrideEntry
	Gmail        []GmailReservation
	Inventory    Inventory
	Aliases      normalize.Aliases
	Descriptions Descriptions
}
