// Package patch applies targeted, rule-based corrections to assembled
// activities. Patches run last in the pipeline so they can override
// anything earlier stages produced: fill voucher details the source data
// only marks, replace bad notes, swap in working ticket links.
package patch

import (
	"strings"

	"github.com/tripweave/tripweave/pkg/trip"
)

// Rule is one targeted correction. Match is tested against the raw date
// and title of every activity; Apply rewrites the matching activity in
// place.
type Rule struct {
	// Name identifies the rule in logs and audit output.
	Name string

	Match func(date, title string) bool
	Apply func(act *trip.Activity)
}

// Engine applies an ordered rule list.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine over the given rules. Rules apply in order;
// later rules see the effects of earlier ones.
func NewEngine(rules []Rule) *Engine {
	return &Engine{rules: rules}
}

// Apply runs every matching rule against the activity and returns the
// names of the rules that fired.
func (e *Engine) Apply(act *trip.Activity) []string {
	var fired []string
	for _, rule := range e.rules {
		if rule.Match(act.Date, act.Title) {
			rule.Apply(act)
			fired = append(fired, rule.Name)
		}
	}
	return fired
}

// Rules returns the built-in correction list.
func Rules() []Rule {
	return []Rule{
		airportTransferRule("departure-transfer-voucher", "12/31", "自宅出發", "https://68666.tw/Xyvf", "7509"),
		airportTransferRule("return-transfer-voucher", "1/5", "小港機場 出發", "https://68666.tw/7zv1", "9660"),
		ninjaShowRule(),
	}
}

// airportTransferRule fills the transfer-service voucher whose format row
// is only the "LINK + 驗證碼" marker.
func airportTransferRule(name, dateSub, titleSub, url, code string) Rule {
	const service = "肯驛機場接駁"
	return Rule{
		Name: name,
		Match: func(date, title string) bool {
			return strings.Contains(date, dateSub) && strings.Contains(title, titleSub)
		},
		Apply: func(act *trip.Activity) {
			slots := act.TicketSlots[:0:0]
			for _, s := range act.TicketSlots {
				if s.Kind != trip.KindLinkWithCode {
					slots = append(slots, s)
				}
			}
			slots = append(slots, trip.TicketSlot{
				ID:    act.ID + ":link_code:special",
				Kind:  trip.KindLinkWithCode,
				Label: service,
				Value: &trip.SlotValue{
					ServiceName: service,
					URL:         url,
					Code:        code,
				},
			})
			act.TicketType = trip.TicketLinkWithCode
			act.TicketSlots = slots
		},
	}
}

// ninjaShowRule replaces the show's notes with the venue's admission
// conditions and its slots with the reissued ticket links.
func ninjaShowRule() Rule {
	notes := strings.Join([]string{
		"• 請提前 15 分鐘抵達。",
		"• 16 歲以下需由家長/監護人陪同。",
		"• 若醉酒可能被拒絕入場。",
		"• 表演期間禁止拍照。",
		"• 不提供指定座位。",
		"• 寵物禁止（服務犬除外）。",
		"• 請攜帶可驗證身份的證件（如護照）。",
		"• 地點：JR 新宿站東口往歌舞伎町方向，近哥吉拉大樓。",
	}, "\n")

	return Rule{
		Name: "ninja-show-tickets",
		Match: func(_, title string) bool {
			return strings.Contains(title, "東京忍者＆歌舞伎表演")
		},
		Apply: func(act *trip.Activity) {
			act.Note = notes
			act.TicketSlots = []trip.TicketSlot{
				{
					ID:    act.ID + ":link:1",
					Kind:  trip.KindLink,
					Label: "票券（1 人）",
					Value: &trip.SlotValue{URL: "https://t.linktivity.io/issueticket/tryhard/H6-NVmgBjHiN7DX4/KKDAY-20251115-WZWQ?lang=ZT"},
				},
				{
					ID:    act.ID + ":link:2",
					Kind:  trip.KindLink,
					Label: "票券（2 人 A）",
					Value: &trip.SlotValue{URL: "https://t.linktivity.io/issueticket/tryhard/f7vPTHEeERi2C-oa/CTRIP-20251113-HFHF?lang=EN"},
				},
				{
					ID:    act.ID + ":link:3",
					Kind:  trip.KindLink,
					Label: "票券（2 人 B）",
					Value: &trip.SlotValue{URL: "https://t.linktivity.io/issueticket/tryhard/DrHDQOeurwlEzOcf/CTRIP-20251113-694N?lang=EN"},
				},
			}
		},
	}
}
