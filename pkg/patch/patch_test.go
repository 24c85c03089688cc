package patch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripweave/pkg/trip"
)

func TestTransferVoucherRule(t *testing.T) {
	engine := NewEngine(Rules())

	act := trip.Activity{
		ID:    "2025-12-31__自宅出發",
		Date:  "2025/12/31 (三)",
		Title: "自宅出發",
		TicketSlots: []trip.TicketSlot{
			// The marker slot the format parser produced, no value.
			{ID: "2025-12-31__自宅出發:link_code:0", Kind: trip.KindLinkWithCode, Label: "LINK + 驗證碼"},
		},
	}

	fired := engine.Apply(&act)
	assert.Equal(t, []string{"departure-transfer-voucher"}, fired)

	require.Len(t, act.TicketSlots, 1)
	slot := act.TicketSlots[0]
	assert.Equal(t, "2025-12-31__自宅出發:link_code:special", slot.ID)
	assert.Equal(t, "肯驛機場接駁", slot.Label)
	require.NotNil(t, slot.Value)
	assert.Equal(t, "https://68666.tw/Xyvf", slot.Value.URL)
	assert.Equal(t, "7509", slot.Value.Code)
	assert.Equal(t, trip.TicketLinkWithCode, act.TicketType)
}

func TestReturnTransferVoucherRule(t *testing.T) {
	engine := NewEngine(Rules())

	act := trip.Activity{
		ID:    "2026-01-05__小港機場返家",
		Date:  "2026/1/5 (一)",
		Title: "小港機場 出發",
	}

	fired := engine.Apply(&act)
	assert.Equal(t, []string{"return-transfer-voucher"}, fired)
	require.Len(t, act.TicketSlots, 1)
	assert.Equal(t, "https://68666.tw/7zv1", act.TicketSlots[0].Value.URL)
	assert.Equal(t, "9660", act.TicketSlots[0].Value.Code)
}

func TestNinjaShowRule(t *testing.T) {
	engine := NewEngine(Rules())

	act := trip.Activity{
		ID:    "2026-01-01__東京忍者-歌舞伎表演",
		Date:  "2026/1/1 (四)",
		Title: "東京忍者＆歌舞伎表演",
		Note:  "舊備註",
		TicketSlots: []trip.TicketSlot{
			{ID: "x:link:0:0", Kind: trip.KindLink},
			{ID: "x:link:0:1", Kind: trip.KindLink},
		},
	}

	fired := engine.Apply(&act)
	assert.Equal(t, []string{"ninja-show-tickets"}, fired)

	assert.True(t, strings.HasPrefix(act.Note, "• 請提前 15 分鐘抵達。"))
	require.Len(t, act.TicketSlots, 3)
	assert.Equal(t, "票券（1 人）", act.TicketSlots[0].Label)
	assert.Equal(t, "票券（2 人 A）", act.TicketSlots[1].Label)
	assert.Equal(t, "票券（2 人 B）", act.TicketSlots[2].Label)
	for _, slot := range act.TicketSlots {
		assert.Equal(t, trip.KindLink, slot.Kind)
		require.NotNil(t, slot.Value)
		assert.Contains(t, slot.Value.URL, "t.linktivity.io")
	}
}

func TestNoRuleFires(t *testing.T) {
	engine := NewEngine(Rules())

	act := trip.Activity{
		ID:    "2026-01-01__新年參拜",
		Date:  "2026/1/1 (四)",
		Title: "新年參拜",
	}
	fired := engine.Apply(&act)
	assert.Empty(t, fired)
	assert.Empty(t, act.TicketSlots)
}
