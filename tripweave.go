// Package tripweave reconciles a hand-authored trip schedule with its side
// tables (attachment overrides, file inventory, gmail reservations, title
// aliases, descriptions) into one canonical itinerary.
package tripweave

import (
	"context"
	"fmt"
	"sync"

	"github.com/tripweave/tripweave/pkg/inventory"
	"github.com/tripweave/tripweave/pkg/logging"
	"github.com/tripweave/tripweave/pkg/pipeline"
	"github.com/tripweave/tripweave/pkg/schedule"
	"github.com/tripweave/tripweave/pkg/schedule/embedded"
	"github.com/tripweave/tripweave/pkg/trip"
)

// Tripweave reconciles trip data and answers questions about the result.
type Tripweave interface {
	// Trip returns the reconciled trip, building it on first use.
	Trip(ctx context.Context) (*trip.Trip, error)

	// Build runs the pipeline and returns the full result including
	// warnings and statistics. Results are not cached.
	Build(ctx context.Context) *pipeline.Result

	// Audit cross-checks the attachment overrides against the built
	// trip and the file inventory.
	Audit(ctx context.Context) ([]pipeline.AuditRow, error)

	// Probe checks that every inventory attachment URL serves the
	// content its slot promises.
	Probe(ctx context.Context) ([]inventory.ProbeResult, error)

	// Tables returns the loaded input tables.
	Tables() *schedule.Tables
}

// tripweave is the internal implementation of the Tripweave interface.
type tripweave struct {
	mu       sync.Mutex
	config   *config
	tables   *schedule.Tables
	pipeline *pipeline.Pipeline
	cached   *trip.Trip
}

// New creates a Tripweave instance. Without options it loads the
// compiled-in dataset and the built-in patch rules.
func New(opts ...Option) (Tripweave, error) {
	tw := &tripweave{config: newConfig()}
	for _, opt := range opts {
		if err := opt(tw.config); err != nil {
			return nil, fmt.Errorf("applying option: %w", err)
		}
	}

	tables := tw.config.tables
	if tables == nil {
		fsys := tw.config.dataFS
		if fsys == nil {
			fsys = embedded.FS()
		}
		loaded, err := schedule.Load(fsys)
		if err != nil {
			return nil, fmt.Errorf("loading trip tables: %w", err)
		}
		tables = loaded
	}

	tw.tables = tables
	tw.pipeline = pipeline.New(tables, tw.config.baseURL, tw.config.rules)
	return tw, nil
}

// Trip returns the reconciled trip, building it on first use.
func (t *tripweave) Trip(ctx context.Context) (*trip.Trip, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cached != nil {
		return t.cached, nil
	}
	result := t.pipeline.Run(t.loggerCtx(ctx))
	if !result.IsSuccess() {
		return nil, fmt.Errorf("building trip: %w", result.Errors[0])
	}
	t.cached = result.Trip
	return t.cached, nil
}

// Build runs the pipeline and returns the full result.
func (t *tripweave) Build(ctx context.Context) *pipeline.Result {
	return t.pipeline.Run(t.loggerCtx(ctx))
}

// Audit cross-checks the attachment overrides against the built trip.
func (t *tripweave) Audit(ctx context.Context) ([]pipeline.AuditRow, error) {
	built, err := t.Trip(ctx)
	if err != nil {
		return nil, err
	}
	return t.pipeline.Audit(built), nil
}

// Probe checks every inventory attachment URL.
func (t *tripweave) Probe(ctx context.Context) ([]inventory.ProbeResult, error) {
	prober := inventory.NewProber(t.config.httpClient)
	return prober.ProbeAll(t.loggerCtx(ctx), t.pipeline.Inventory())
}

// loggerCtx attaches the configured logger to the context, if any.
func (t *tripweave) loggerCtx(ctx context.Context) context.Context {
	if t.config.logger == nil {
		return ctx
	}
	return logging.WithLogger(ctx, t.config.logger)
}

// Tables returns the loaded input tables.
func (t *tripweave) Tables() *schedule.Tables {
	return t.tables
}
