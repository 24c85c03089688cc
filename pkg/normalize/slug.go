package normalize

import (
	"strings"
	"unicode"
)

// slugTitleLimit caps the title portion of a slug to keep ids short.
const slugTitleLimit = 30

// Slug derives the URL-safe activity id base from a date and title, for
// example "2025-12-31__自宅出發". The title is lower-cased; whitespace,
// parentheses and dashes become single dashes; everything but letters,
// digits, underscores, Han ideographs and dashes is dropped.
func Slug(date, title string) string {
	cleanDate := date
	if i := strings.IndexByte(cleanDate, ' '); i >= 0 {
		cleanDate = cleanDate[:i]
	}
	cleanDate = strings.ReplaceAll(cleanDate, "/", "-")

	runes := []rune(title)
	if len(runes) > slugTitleLimit {
		runes = runes[:slugTitleLimit]
	}

	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(string(runes)) {
		switch {
		case unicode.IsSpace(r) || r == '(' || r == ')' || r == '（' || r == '）' || r == '-':
			if !lastDash {
				b.WriteRune('-')
				lastDash = true
			}
		case r == '_' || unicode.Is(unicode.Han, r) ||
			(r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastDash = false
		default:
			// Dropped entirely; kana and symbols do not survive slugging.
		}
	}
	return cleanDate + "__" + strings.Trim(b.String(), "-")
}
