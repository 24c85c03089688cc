// Package ticket interprets the free-text attachment format specs into
// typed ticket slots and reconciles those slots against the files that
// actually exist.
//
// A format spec is a line like "PDF * 2 (說明文件+注意事項)" or
// "跳轉 APP (日産レンタカーアプリ)". The vocabulary grew by hand, so
// matching is deliberately loose: rules test for substrings on the
// lower-cased line and unrecognized lines yield no slots at all.
package ticket

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tripweave/tripweave/pkg/trip"
)

var (
	countRe = regexp.MustCompile(`\*\s*(\d+)`)
	metaRe  = regexp.MustCompile(`\((.*)\)`)
)

// Nissan rental app jump payload. The one app the schedule jumps to today;
// other app lines fall back to a bare placeholder slot.
const (
	nissanAppName      = "日産レンタカーアプリ"
	nissanPackageName  = "com.nissan.rentacar.aprs"
	nissanPlayStoreURL = "https://play.google.com/store/apps/details?id=com.nissan.rentacar.aprs&hl=zh_TW"
	nissanIntentURL    = "intent://#Intent;package=com.nissan.rentacar.aprs;end"
)

// ParseFormat interprets the format spec lines of one activity. The
// returned ticket type is a display hint: when several lines match
// different rules the last match wins. Slot ids are derived from the
// activity id, the line index and the position within the line.
func ParseFormat(items []string, activityID string) (trip.TicketType, []trip.TicketSlot) {
	mainType := trip.TicketNone
	var slots []trip.TicketSlot

	for index, item := range items {
		lower := strings.ToLower(item)
		count := 1
		if m := countRe.FindStringSubmatch(item); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil {
				count = n
			}
		}

		// The line minus its count marker labels the slots.
		cleanLabel := strings.TrimSpace(countRe.ReplaceAllString(item, ""))

		// Parenthesized meta splits on "+" into per-slot labels.
		baseLabel := cleanLabel
		var metaLabels []string
		if m := metaRe.FindStringSubmatch(cleanLabel); m != nil {
			metaLabels = strings.Split(m[1], "+")
			baseLabel = strings.TrimSpace(strings.Replace(cleanLabel, m[0], "", 1))
		}

		idx := strconv.Itoa(index)
		switch {
		case strings.Contains(lower, "qr code") || strings.Contains(lower, "qr_code"):
			mainType = trip.TicketQRImage
			for i := 0; i < count; i++ {
				slots = append(slots, trip.TicketSlot{
					ID:    activityID + ":qr:" + idx + ":" + strconv.Itoa(i),
					Kind:  trip.KindQRImage,
					Label: numberedLabel(cleanLabel, count, i),
				})
			}

		case strings.Contains(lower, "pdf"):
			mainType = trip.TicketPDFFile
			for i := 0; i < count; i++ {
				label := ""
				if i < len(metaLabels) {
					label = strings.TrimSpace(metaLabels[i])
				}
				if label == "" {
					label = numberedLabel(baseLabel, count, i)
				}
				slots = append(slots, trip.TicketSlot{
					ID:    activityID + ":pdf:" + idx + ":" + strconv.Itoa(i),
					Kind:  trip.KindPDF,
					Label: label,
				})
			}

		case strings.Contains(lower, "link") && strings.Contains(item, "驗證碼"):
			mainType = trip.TicketLinkWithCode
			// The format line is only a marker; the voucher details
			// arrive later via a patch or stay empty for manual entry.
			slots = append(slots, trip.TicketSlot{
				ID:    activityID + ":link_code:" + idx,
				Kind:  trip.KindLinkWithCode,
				Label: cleanLabel,
			})

		case strings.Contains(lower, "link"):
			mainType = trip.TicketLink
			for i := 0; i < count; i++ {
				slots = append(slots, trip.TicketSlot{
					ID:    activityID + ":link:" + idx + ":" + strconv.Itoa(i),
					Kind:  trip.KindLink,
					Label: numberedLabel(cleanLabel, count, i),
				})
			}

		case strings.Contains(item, "跳轉") && strings.Contains(lower, "app"):
			mainType = trip.TicketAppJump
			slot := trip.TicketSlot{
				ID:    activityID + ":app:" + idx,
				Kind:  trip.KindApp,
				Label: cleanLabel,
			}
			if strings.Contains(item, nissanAppName) {
				slot.Label = nissanAppName
				slot.Value = &trip.SlotValue{
					AppName:      nissanAppName,
					PackageName:  nissanPackageName,
					PlayStoreURL: nissanPlayStoreURL,
					IntentURL:    nissanIntentURL,
				}
			}
			slots = append(slots, slot)

		case strings.Contains(lower, "gmail") || strings.HasPrefix(strings.TrimSpace(lower), "subject:"):
			// Override rows encode the mail subject as the format.
			mainType = trip.TicketGmailJump
			subject := strings.ReplaceAll(item, "subject:", "")
			subject = strings.TrimSpace(strings.ReplaceAll(subject, `"`, ""))
			slots = append(slots, trip.TicketSlot{
				ID:    activityID + ":gmail:" + idx,
				Kind:  trip.KindGmail,
				Label: "Gmail 搜尋",
				Value: &trip.SlotValue{Subject: subject},
			})
		}
	}

	return mainType, slots
}

// numberedLabel suffixes a 1-based position when a line yields several
// slots of the same kind.
func numberedLabel(label string, count, i int) string {
	if count > 1 {
		return label + " " + strconv.Itoa(i+1)
	}
	return label
}
