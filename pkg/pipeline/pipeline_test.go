package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripweave/pkg/patch"
	"github.com/tripweave/tripweave/pkg/schedule"
	"github.com/tripweave/tripweave/pkg/schedule/embedded"
	"github.com/tripweave/tripweave/pkg/trip"
)

func buildDefault(t *testing.T) (*Pipeline, *Result) {
	t.Helper()
	tables, err := embedded.Load()
	require.NoError(t, err)

	p := New(tables, "", patch.Rules())
	result := p.Run(context.Background())
	require.True(t, result.IsSuccess())
	require.NotNil(t, result.Trip)
	return p, result
}

func findActivity(t *testing.T, tr *trip.Trip, title string) trip.Activity {
	t.Helper()
	for _, act := range tr.Activities() {
		if act.Title == title {
			return act
		}
	}
	t.Fatalf("activity %q not found", title)
	return trip.Activity{}
}

func TestRunDefaultDataset(t *testing.T) {
	_, result := buildDefault(t)

	stats := result.Metadata.Stats
	assert.Equal(t, 6, stats.Days)
	assert.Equal(t, 38, stats.Activities)
	assert.Equal(t, 21, stats.OverridesMatched)
	assert.Equal(t, 0, stats.OverridesUnmatched)
	assert.Equal(t, 2, stats.FlightsExtracted)
	assert.Equal(t, 0, stats.IDCollisions)
	assert.Empty(t, result.Warnings)
}

func TestRunIDsAreUnique(t *testing.T) {
	_, result := buildDefault(t)

	seen := make(map[string]bool)
	for _, act := range result.Trip.Activities() {
		assert.False(t, seen[act.ID], "duplicate id %q", act.ID)
		assert.NotEmpty(t, act.ID)
		seen[act.ID] = true
	}
}

func TestRunFlightExtraction(t *testing.T) {
	_, result := buildDefault(t)

	outbound := findActivity(t, result.Trip, "飛往東京成田機場")
	require.NotNil(t, outbound.Flight)
	assert.Equal(t, trip.FlightInfo{AirlineCode: "CI", FlightNumber: "126"}, *outbound.Flight)
	// The flight token is gone from the map targets.
	require.Len(t, outbound.MapTargets, 2)
	assert.Equal(t, "成田國際機場第二航廈", outbound.MapTargets[0].Label)

	inbound := findActivity(t, result.Trip, "飛往高雄小港機場")
	require.NotNil(t, inbound.Flight)
	assert.Equal(t, trip.FlightInfo{AirlineCode: "UA", FlightNumber: "837"}, *inbound.Flight)
	// The numeric note was consumed as the flight number.
	assert.Empty(t, inbound.Note)
}

func TestRunSlotsSyncWithFiles(t *testing.T) {
	_, result := buildDefault(t)

	// Spec says PDF * 4 but five ticket files exist; the files win.
	flights := findActivity(t, result.Trip, "飛往東京成田機場")
	pdfs := flights.SlotsOfKind(trip.KindPDF)
	require.Len(t, pdfs, 5)
	labels := make([]string, 0, len(pdfs))
	for _, s := range pdfs {
		require.True(t, s.Filled(), "slot %s should carry a file URL", s.ID)
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"趙湘鈴", "徐秀春", "王信雄", "王聖傑", "王聖智"}, labels)

	// Folder reached through a manual mapping.
	lounge := findActivity(t, result.Trip, "貴賓室體驗")
	qrs := lounge.SlotsOfKind(trip.KindQRImage)
	require.Len(t, qrs, 5)
	assert.True(t, qrs[0].Filled())
}

func TestRunOverrideWinsReservedLabel(t *testing.T) {
	_, result := buildDefault(t)

	// Aliased title joined to the override row; its kind label wins.
	skyliner := findActivity(t, result.Trip, "機場快線：Skyliner")
	assert.Equal(t, "兌換憑證", skyliner.ReservedLabel)

	// No override row: the schedule's own label survives.
	arrival := findActivity(t, result.Trip, "抵達高雄小港國際機場")
	assert.Equal(t, "五人機票", arrival.ReservedLabel)
	assert.Empty(t, arrival.TicketSlots)
}

func TestRunGmailSlots(t *testing.T) {
	_, result := buildDefault(t)

	eel := findActivity(t, result.Trip, "午餐：大衆鰻 うな富士")
	gmailSlots := eel.SlotsOfKind(trip.KindGmail)
	require.Len(t, gmailSlots, 1, "no duplicate gmail slot should be injected")
	require.NotNil(t, gmailSlots[0].Value)
	assert.Equal(t, "[大衆鰻 うな富士] 1月3日ご来店 crane予約サービス", gmailSlots[0].Value.Subject)
	assert.Contains(t, gmailSlots[0].Value.URL, "https://mail.google.com/mail/u/0/#search/subject%3A%22")
	assert.Equal(t, trip.TicketGmailJump, eel.TicketType)
}

func TestRunPatchesApplied(t *testing.T) {
	_, result := buildDefault(t)

	departure := findActivity(t, result.Trip, "自宅出發")
	require.Len(t, departure.TicketSlots, 1)
	slot := departure.TicketSlots[0]
	assert.Equal(t, trip.KindLinkWithCode, slot.Kind)
	require.NotNil(t, slot.Value)
	assert.Equal(t, "https://68666.tw/Xyvf", slot.Value.URL)
	assert.Equal(t, "7509", slot.Value.Code)

	// Place-name normalization: the household label renders as 家.
	assert.Equal(t, "家", departure.PlaceName)
	require.NotEmpty(t, departure.MapTargets)
	assert.Equal(t, "家", departure.MapTargets[0].Label)

	show := findActivity(t, result.Trip, "東京忍者＆歌舞伎表演")
	require.Len(t, show.TicketSlots, 3)
	assert.Contains(t, show.TicketSlots[0].Value.URL, "t.linktivity.io")
	assert.Contains(t, show.Note, "請提前 15 分鐘抵達")
}

func TestRunDescriptions(t *testing.T) {
	_, result := buildDefault(t)

	// Exact place match.
	shrine := findActivity(t, result.Trip, "新年參拜")
	assert.Contains(t, shrine.Description, "明治天皇")

	// Forced override by activity id.
	ropeway := findActivity(t, result.Trip, "河口湖纜車、河口湖遊覽船")
	assert.Contains(t, ropeway.Description, "天上山纜車")

	// Contains fallback through the place name.
	outlets := findActivity(t, result.Trip, "Outlet 逛街")
	assert.Contains(t, outlets.Description, "Outlet")
}

func TestRunUnmatchedOverrideWarns(t *testing.T) {
	tables, err := embedded.Load()
	require.NoError(t, err)

	tables.Overrides = append(tables.Overrides, schedule.OverrideEntry{
		Date:   "2026/01/06 (二)",
		Title:  "不存在的行程",
		Kind:   "測試",
		Format: "PDF * 1",
	})

	p := New(tables, "", nil)
	result := p.Run(context.Background())

	assert.Equal(t, 1, result.Metadata.Stats.OverridesUnmatched)
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "2026-01-06|不存在的行程")
}

func TestAuditDefaultDataset(t *testing.T) {
	p, result := buildDefault(t)

	rows := p.Audit(result.Trip)
	require.Len(t, rows, 21)
	for _, row := range rows {
		assert.Equal(t, StatusOK, row.Status, "row %s / %s: %s", row.Date, row.Activity, row.Notes)
		assert.NotEmpty(t, row.ActivityID, "row %s / %s should reach an activity", row.Date, row.Activity)
	}
}

func TestAuditDetectsMismatch(t *testing.T) {
	tables, err := embedded.Load()
	require.NoError(t, err)

	// Drop a ticket file: the override row now promises more than storage holds.
	folder := tables.Inventory.Folders["2025-12-31__飛往東京成田機場"]
	folder.PDF = folder.PDF[:3]
	tables.Inventory.Folders["2025-12-31__飛往東京成田機場"] = folder

	p := New(tables, "", patch.Rules())
	result := p.Run(context.Background())
	rows := p.Audit(result.Trip)

	var found bool
	for _, row := range rows {
		if row.Activity == "飛往東京成田機場" {
			found = true
			assert.Equal(t, StatusMismatch, row.Status)
			assert.Equal(t, 3, row.FileCount)
			assert.Equal(t, 4, row.SlotCount)
			assert.Contains(t, row.Notes, "Files: 3")
		}
	}
	assert.True(t, found)
}
