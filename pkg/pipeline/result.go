package pipeline

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/tripweave/tripweave/pkg/trip"
)

// Result is the outcome of one reconciliation run.
type Result struct {
	// Trip is the assembled itinerary.
	Trip *trip.Trip

	// Metadata about the run.
	Metadata Metadata

	// Warnings are advisory inconsistencies found along the way. They
	// never abort a run; the trip is built from whatever matched.
	Warnings []string

	// Errors collected from non-fatal stages.
	Errors []error
}

// Metadata contains metadata about a reconciliation run.
type Metadata struct {
	StartTime utc.Time
	EndTime   utc.Time
	Stats     Statistics
}

// Statistics counts what a run touched.
type Statistics struct {
	Days               int
	Activities         int
	OverridesMatched   int
	OverridesUnmatched int
	SlotsBuilt         int
	GmailInjected      int
	FlightsExtracted   int
	PatchesApplied     int
	IDCollisions       int
}

// NewResult creates an empty result stamped with the start time.
func NewResult() *Result {
	return &Result{
		Metadata: Metadata{StartTime: utc.Now()},
	}
}

// IsSuccess reports whether the run produced a trip without errors.
// Warnings do not affect success.
func (r *Result) IsSuccess() bool {
	return r.Trip != nil && len(r.Errors) == 0
}

// Summary returns a one-line human-readable account of the run.
func (r *Result) Summary() string {
	if !r.IsSuccess() {
		return fmt.Sprintf("Reconciliation failed with %d errors", len(r.Errors))
	}
	s := r.Metadata.Stats
	return fmt.Sprintf("Reconciled %d activities across %d days (%d overrides matched, %d warnings)",
		s.Activities, s.Days, s.OverridesMatched, len(r.Warnings))
}

// Warnf records a formatted warning.
func (r *Result) Warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Finalize stamps the end time.
func (r *Result) Finalize() {
	r.Metadata.EndTime = utc.Now()
}

// Duration returns how long the run took.
func (r *Result) Duration() string {
	return r.Metadata.EndTime.Sub(r.Metadata.StartTime).String()
}
