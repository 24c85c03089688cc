// Package normalize computes the canonical join keys used to match schedule
// activities against the side tables (attachment overrides, file inventory,
// gmail reservations, descriptions).
//
// Every table computes its keys through this package; two rows describing the
// same real-world event must normalize to an identical key or the join
// silently fails. Such a failure is a data-quality defect, not an error:
// the pipeline degrades and the audit surfaces it.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// KeySeparator joins the date and title halves of a normalized key.
const KeySeparator = "|"

// Key canonicalizes a (date, title) pair into the `YYYY-MM-DD|title` join
// key. The date may carry a parenthesized weekday suffix ("2026/1/4 (日)");
// the title is width-folded and stripped of whitespace and joining
// punctuation so that spacing and parenthesis-style variants collide.
func Key(date, title string) string {
	return Date(date) + KeySeparator + keyTitle(title)
}

// Date canonicalizes a schedule date string to YYYY-MM-DD. Input dates are
// slash-separated with optional single-digit month/day and an optional
// trailing weekday ("2025/12/31 (三)"). Unparseable input is returned as-is.
func Date(date string) string {
	token := date
	if i := strings.IndexByte(token, ' '); i >= 0 {
		token = token[:i]
	}
	parts := strings.Split(token, "/")
	if len(parts) != 3 {
		return token
	}
	return parts[0] + "-" + pad2(parts[1]) + "-" + pad2(parts[2])
}

// BaseTitle cuts a title at its first " (" so that a parenthetical refinement
// ("貴賓室體驗 (希和 -NOA-)") does not participate in key matching.
func BaseTitle(title string) string {
	if i := strings.Index(title, " ("); i >= 0 {
		return title[:i]
	}
	return title
}

// keyTitle normalizes the title half of a key: trim, fold full-width
// variants to half-width, strip all whitespace, then strip parentheses,
// hyphens and enumeration commas.
func keyTitle(title string) string {
	folded := FoldWidth(strings.TrimSpace(title))

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if unicode.IsSpace(r) {
			continue
		}
		switch r {
		case '(', ')', '（', '）', '、', '-', '－':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FoldWidth converts full-width compatibility characters (ideographic space,
// full-width ASCII and punctuation) to their half-width equivalents. Wide
// CJK ideographs and kana are left untouched so display text survives.
func FoldWidth(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if width.LookupRune(r).Kind() == width.EastAsianFullwidth {
			b.WriteString(width.Narrow.String(string(r)))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// PlaceLabel normalizes a place display name: trims whitespace and applies
// the household alias used throughout the source tables.
func PlaceLabel(label string) string {
	trimmed := strings.TrimSpace(label)
	if trimmed == "我家" {
		return "家"
	}
	return trimmed
}

// ForDescriptionMatch normalizes free text for description-table matching:
// lower-case, parenthetical content removed, separators and symbols
// stripped, keeping only letters, digits and underscores.
func ForDescriptionMatch(s string) string {
	if s == "" {
		return ""
	}
	folded := strings.ToLower(FoldWidth(s))
	folded = stripParenthetical(folded)

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripParenthetical removes half-width parenthesized spans, non-greedily.
func stripParenthetical(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}

// Aliases maps variant activity titles to the canonical titles used by the
// legacy side tables. Lookup is exact-match on the trimmed raw title; no
// fuzzy matching. Unregistered title drift is surfaced only by the audit.
type Aliases map[string]string

// Resolve returns the canonical title for a raw schedule title, or the raw
// title itself when no alias is registered.
func (a Aliases) Resolve(title string) string {
	if canonical, ok := a[strings.TrimSpace(title)]; ok {
		return canonical
	}
	return title
}
