// Package pipeline assembles the canonical trip from the raw schedule and
// its side tables. Each activity is matched against the attachment
// override list, its format spec is parsed into ticket slots, the slots
// are reconciled against the file inventory, map links and flight info
// are extracted, a gmail jump is injected when a reservation mail exists,
// and targeted patch rules run last.
//
// Inconsistent input never aborts a run. Failed joins degrade to partial
// activities and advisory warnings; the audit makes the gaps visible.
package pipeline

import (
	"context"

	"github.com/tripweave/tripweave/pkg/inventory"
	"github.com/tripweave/tripweave/pkg/logging"
	"github.com/tripweave/tripweave/pkg/maplink"
	"github.com/tripweave/tripweave/pkg/normalize"
	"github.com/tripweave/tripweave/pkg/patch"
	"github.com/tripweave/tripweave/pkg/schedule"
	"github.com/tripweave/tripweave/pkg/ticket"
	"github.com/tripweave/tripweave/pkg/trip"
)

// gmailJumpLabel labels the injected reservation-mail slot.
const gmailJumpLabel = "跳轉 Gmail"

// Pipeline reconciles one set of input tables.
type Pipeline struct {
	tables  *schedule.Tables
	inv     *inventory.Set
	engine  *patch.Engine
	resolve *descriptionResolver
}

// overrideInfo is one attachment-override row keyed for lookup.
type overrideInfo struct {
	kind   string
	format string
}

// New builds a pipeline over the given tables. The inventory is processed
// with baseURL as the asset root; rules is usually patch.Rules().
func New(tables *schedule.Tables, baseURL string, rules []patch.Rule) *Pipeline {
	return &Pipeline{
		tables:  tables,
		inv:     inventory.Build(tables.Inventory, baseURL),
		engine:  patch.NewEngine(rules),
		resolve: newDescriptionResolver(tables.Descriptions),
	}
}

// Inventory exposes the processed inventory, for probing and audits.
func (p *Pipeline) Inventory() *inventory.Set {
	return p.inv
}

// Run assembles the trip. The returned result always carries a trip; run
// problems surface as warnings, not errors.
func (p *Pipeline) Run(ctx context.Context) *Result {
	result := NewResult()
	logger := logging.Ctx(ctx)

	overrides := p.buildOverrideMap(result)
	gmail := p.buildGmailMap()
	ids := newIDAllocator()

	out := &trip.Trip{Name: p.tables.Trip.Name}
	for _, day := range p.tables.Trip.Days {
		outDay := trip.Day{Date: day.Date}
		for _, raw := range day.Activities {
			act := p.buildActivity(ctx, day.Date, raw, overrides, gmail, ids, result)
			outDay.Activities = append(outDay.Activities, act)
		}
		out.Days = append(out.Days, outDay)
	}

	// Whatever is left in the override map matched no activity.
	for key, info := range overrides {
		result.Metadata.Stats.OverridesUnmatched++
		result.Warnf("attachment override matched no activity: key=%s kind=%s", key, info.kind)
		logger.Warn().
			Str("key", key).
			Str("kind", info.kind).
			Msg("Attachment override matched no activity")
	}

	result.Trip = out
	result.Metadata.Stats.Days = len(out.Days)
	result.Finalize()
	return result
}

// buildActivity reconciles one raw schedule entry into a canonical
// activity.
func (p *Pipeline) buildActivity(
	ctx context.Context,
	date string,
	raw schedule.Activity,
	overrides map[string]overrideInfo,
	gmail map[string]string,
	ids *idAllocator,
	result *Result,
) trip.Activity {
	logger := logging.Ctx(ctx)
	stats := &result.Metadata.Stats
	stats.Activities++

	aliased := p.tables.Aliases.Resolve(raw.Title)
	key := normalize.Key(date, normalize.BaseTitle(aliased))

	id, collided := ids.allocate(normalize.Slug(date, aliased))
	if collided {
		stats.IDCollisions++
		result.Warnf("duplicate activity slug, disambiguated as %q", id)
		logger.Warn().Str("id", id).Msg("Duplicate activity slug disambiguated")
	}

	flight, cleanedLink, cleanedNote := maplink.ExtractFlight(raw.MapLink, raw.Note)
	if flight != nil {
		stats.FlightsExtracted++
	}

	var (
		ticketType trip.TicketType
		slots      []trip.TicketSlot
	)
	override, hasOverride := overrides[key]
	if hasOverride {
		ticketType, slots = ticket.ParseFormat([]string{override.format}, id)

		// Actual files win over the declared spec.
		if folder, ok := p.inv.Lookup(inventory.Key(date, aliased)); ok {
			slots = ticket.Reconcile(id, slots, folder)
		}
		delete(overrides, key)
		stats.OverridesMatched++
	}

	// Gmail jump slots parsed from an override row carry only the
	// subject; complete them with the search URL.
	for i := range slots {
		if slots[i].Kind == trip.KindGmail && slots[i].Value != nil && slots[i].Value.URL == "" {
			slots[i].Value.URL = maplink.GmailSearchURL(slots[i].Value.Subject)
		}
	}

	placeName := normalize.PlaceLabel(raw.Place)

	var linkItems []string
	if cleanedLink != "" {
		linkItems = []string{cleanedLink}
	}
	parsed := maplink.Parse(linkItems, placeName)
	for i := range parsed.MapTargets {
		parsed.MapTargets[i].Label = normalize.PlaceLabel(parsed.MapTargets[i].Label)
	}

	if subject, ok := gmail[key]; ok && !hasGmailSlot(slots) {
		slots = append(slots, trip.TicketSlot{
			ID:    id + ":gmail:auto",
			Kind:  trip.KindGmail,
			Label: gmailJumpLabel,
			Value: &trip.SlotValue{
				Subject: subject,
				URL:     maplink.GmailSearchURL(subject),
			},
		})
		stats.GmailInjected++
	}
	stats.SlotsBuilt += len(slots)

	reservedLabel := raw.Reserved
	if hasOverride {
		reservedLabel = override.kind
	}

	act := trip.Activity{
		ID:              id,
		Date:            date,
		Time:            raw.Time,
		Title:           raw.Title,
		PlaceName:       placeName,
		ReservedLabel:   reservedLabel,
		ReservationTime: raw.ReservationTime,
		Flight:          flight,
		Description:     p.resolve.resolve(id, raw.Title, raw.Place),
		Note:            cleanedNote,
		MapTargets:      parsed.MapTargets,
		InfoLinks:       parsed.InfoLinks,
		TicketType:      ticketType,
		TicketSlots:     slots,
	}

	if fired := p.engine.Apply(&act); len(fired) > 0 {
		stats.PatchesApplied += len(fired)
		logger.Debug().Str("id", id).Strs("rules", fired).Msg("Patch rules applied")
	}
	return act
}

// buildOverrideMap keys the override rows for joining. A later row with
// the same key silently replaces an earlier one, with a warning.
func (p *Pipeline) buildOverrideMap(result *Result) map[string]overrideInfo {
	m := make(map[string]overrideInfo, len(p.tables.Overrides))
	for _, row := range p.tables.Overrides {
		key := row.Key()
		if _, dup := m[key]; dup {
			result.Warnf("duplicate attachment override key overwritten: %s", key)
		}
		m[key] = overrideInfo{kind: row.Kind, format: row.Format}
	}
	return m
}

// hasGmailSlot reports whether the slot list already carries a mail jump,
// typically parsed from an override row's subject format.
func hasGmailSlot(slots []trip.TicketSlot) bool {
	for _, s := range slots {
		if s.Kind == trip.KindGmail {
			return true
		}
	}
	return false
}

func (p *Pipeline) buildGmailMap() map[string]string {
	m := make(map[string]string, len(p.tables.Gmail))
	for _, row := range p.tables.Gmail {
		m[row.Key()] = row.Subject
	}
	return m
}
