// Package trip defines the canonical, reconciled trip model produced by the
// reconciliation pipeline. Values of these types are constructed once per
// pipeline run and are treated as immutable by consumers: the presentation
// layer iterates days and activities read-only and acts on ticket slots via
// their kind-specific values.
package trip

// Trip is the top-level aggregate: a named, ordered list of days.
type Trip struct {
	Name string `json:"name" yaml:"name"`
	Days []Day  `json:"days" yaml:"days"`
}

// Day is one calendar day of the trip with its ordered activities.
type Day struct {
	Date       string     `json:"date" yaml:"date"`
	Activities []Activity `json:"activities" yaml:"activities"`
}

// Activity is one reconciled schedule leg.
type Activity struct {
	// ID is the unique slug for this activity within one pipeline run,
	// derived from date and title and disambiguated on collision.
	ID string `json:"id" yaml:"id"`

	Date  string `json:"date" yaml:"date"`
	Time  string `json:"time" yaml:"time"`
	Title string `json:"title" yaml:"title"`

	// PlaceName is the normalized display name of the location.
	PlaceName string `json:"place_name,omitempty" yaml:"place_name,omitempty"`

	// ReservedLabel is the resolved reservation label. The override
	// table's kind label wins over the raw schedule's own label.
	ReservedLabel string `json:"reserved_label,omitempty" yaml:"reserved_label,omitempty"`

	// ReservationTime is the reservation slot as written in the raw
	// schedule, for example "17：30" or "19：00 前".
	ReservationTime string `json:"reservation_time,omitempty" yaml:"reservation_time,omitempty"`

	// Flight is set when flight info was extracted from the map-link
	// field (optionally combined with a numeric note).
	Flight *FlightInfo `json:"flight,omitempty" yaml:"flight,omitempty"`

	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Note is the free-text note with any flight-number token already
	// consumed by flight extraction.
	Note string `json:"note,omitempty" yaml:"note,omitempty"`

	MapTargets []MapTarget `json:"map_targets,omitempty" yaml:"map_targets,omitempty"`
	InfoLinks  []InfoLink  `json:"info_links,omitempty" yaml:"info_links,omitempty"`

	// TicketType is the overall classification of the activity's
	// ticketing. When a format spec mixes kinds the last matching item
	// wins; the per-slot Kind is authoritative for rendering, and this
	// field is a display hint only.
	TicketType TicketType `json:"ticket_type,omitempty" yaml:"ticket_type,omitempty"`

	TicketSlots []TicketSlot `json:"ticket_slots,omitempty" yaml:"ticket_slots,omitempty"`
}

// Reserved reports whether the activity carries any reservation label.
func (a *Activity) Reserved() bool {
	return a.ReservedLabel != ""
}

// FlightInfo is an airline code plus flight number, for example CI 126.
type FlightInfo struct {
	AirlineCode  string `json:"airline_code" yaml:"airline_code"`
	FlightNumber string `json:"flight_number" yaml:"flight_number"`
}

// MapTarget is a single map destination: either a resolvable map URL or a
// free-text place-name query, each with a display label. Exactly one of
// URL and Query is set.
type MapTarget struct {
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	URL   string `json:"url,omitempty" yaml:"url,omitempty"`
	Query string `json:"query,omitempty" yaml:"query,omitempty"`
}

// IsQuery reports whether the target is a place-name query rather than a
// direct map URL.
func (t MapTarget) IsQuery() bool {
	return t.URL == "" && t.Query != ""
}

// InfoLink is a non-map external reference attached to an activity.
type InfoLink struct {
	Label string `json:"label" yaml:"label"`
	URL   string `json:"url" yaml:"url"`
}

// Activities returns the trip's activities flattened into one ordered list,
// day by day in document order.
func (t *Trip) Activities() []Activity {
	var out []Activity
	for _, day := range t.Days {
		out = append(out, day.Activities...)
	}
	return out
}

// Activity returns the activity with the given id, if present.
func (t *Trip) Activity(id string) (Activity, bool) {
	for _, day := range t.Days {
		for _, act := range day.Activities {
			if act.ID == id {
				return act, true
			}
		}
	}
	return Activity{}, false
}
