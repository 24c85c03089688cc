package pipeline

import (
	"fmt"

	"github.com/tripweave/tripweave/pkg/inventory"
	"github.com/tripweave/tripweave/pkg/normalize"
	"github.com/tripweave/tripweave/pkg/trip"
)

// Audit statuses.
const (
	StatusOK       = "OK"
	StatusMismatch = "MISMATCH"
)

// AuditRow is the audit verdict for one attachment-override row.
type AuditRow struct {
	Date       string `json:"date"`
	Activity   string `json:"activity"`
	Spec       string `json:"spec"`
	ActivityID string `json:"activity_id"`
	FileCount  int    `json:"file_count"`
	SlotCount  int    `json:"slot_count"`
	Status     string `json:"status"`
	Notes      string `json:"notes,omitempty"`
}

// Audit cross-checks every attachment-override row against the assembled
// trip: does the row reach an activity, and does that activity's slot
// count agree with the files on storage? A row whose folder holds files
// but whose slot count differs is a MISMATCH; a row reaching no activity
// keeps an empty activity id. Unlike the join itself, the audit keys on
// the full title so near-miss rows stand out instead of half-matching.
func (p *Pipeline) Audit(t *trip.Trip) []AuditRow {
	rows := make([]AuditRow, 0, len(p.tables.Overrides))

	for _, item := range p.tables.Overrides {
		row := AuditRow{
			Date:     item.Date,
			Activity: item.Title,
			Spec:     item.Format,
			Status:   StatusOK,
		}
		key := normalize.Key(item.Date, item.Title)

		for _, day := range t.Days {
			for _, act := range day.Activities {
				aliased := p.tables.Aliases.Resolve(act.Title)
				if normalize.Key(day.Date, aliased) != key {
					continue
				}
				row.ActivityID = act.ID
				row.SlotCount = len(act.TicketSlots)

				if folder, ok := p.inv.Lookup(inventory.Key(day.Date, aliased)); ok {
					row.FileCount = folder.Count()
				}
				if row.FileCount > 0 && row.FileCount != row.SlotCount {
					row.Status = StatusMismatch
					row.Notes = fmt.Sprintf("Spec: %s, Files: %d, Slots: %d",
						item.Format, row.FileCount, row.SlotCount)
				}
			}
		}
		rows = append(rows, row)
	}
	return rows
}
