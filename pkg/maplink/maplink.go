// Package maplink interprets the schedule's comma-joined map-link fields:
// mixed runs of Google Maps URLs, place labels, plain-text notes, info
// links and the occasional flight number. It also builds the outbound
// URLs the itinerary jumps to.
package maplink

import (
	"strings"

	"github.com/tripweave/tripweave/pkg/trip"
)

// terminalNames expands the shorthand terminal codes used as map labels.
var terminalNames = map[string]string{
	"T1": "成田機場 第一航廈",
	"T2": "成田機場 第二航廈",
	"T3": "成田機場 第三航廈",
}

// defaultMapLabel labels a map URL when no label token follows it and no
// fallback place name is known.
const defaultMapLabel = "地圖"

// infoLinkLabel labels non-map URLs found among the tokens.
const infoLinkLabel = "行程介紹"

// Parsed is the interpretation of one activity's map-link field.
type Parsed struct {
	MapTargets []trip.MapTarget
	InfoLinks  []trip.InfoLink
}

// Parse splits each raw item on commas and walks the tokens. A Google
// Maps URL becomes a map target labeled by the following non-URL token
// when there is one, by the fallback place name otherwise. Any other URL
// becomes an info link. A bare token becomes a place-query target. When
// nothing at all parses, the fallback place name yields a single query
// target so every activity stays navigable.
func Parse(rawItems []string, fallbackPlaceName string) Parsed {
	var p Parsed
	if len(rawItems) == 0 {
		if fallbackPlaceName != "" {
			p.MapTargets = append(p.MapTargets, trip.MapTarget{
				Query: fallbackPlaceName,
				Label: fallbackPlaceName,
			})
		}
		return p
	}

	for _, item := range rawItems {
		tokens := splitTokens(item)
		for i := 0; i < len(tokens); i++ {
			token := tokens[i]

			if !strings.HasPrefix(token, "http") {
				p.MapTargets = append(p.MapTargets, trip.MapTarget{
					Query: token,
					Label: expandTerminal(token),
				})
				continue
			}

			if !isMapURL(token) {
				p.InfoLinks = append(p.InfoLinks, trip.InfoLink{
					Label: infoLinkLabel,
					URL:   token,
				})
				continue
			}

			target := trip.MapTarget{URL: token}
			if i+1 < len(tokens) && !strings.HasPrefix(tokens[i+1], "http") {
				target.Label = expandTerminal(tokens[i+1])
				i++
			} else if fallbackPlaceName != "" {
				target.Label = fallbackPlaceName
			} else {
				target.Label = defaultMapLabel
			}
			p.MapTargets = append(p.MapTargets, target)
		}
	}

	if len(p.MapTargets) == 0 && fallbackPlaceName != "" {
		p.MapTargets = append(p.MapTargets, trip.MapTarget{
			Query: fallbackPlaceName,
			Label: fallbackPlaceName,
		})
	}
	return p
}

func splitTokens(item string) []string {
	var tokens []string
	for _, t := range strings.Split(item, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func isMapURL(url string) bool {
	return strings.Contains(url, "maps.app.goo.gl") ||
		strings.Contains(url, "google.com/maps")
}

func expandTerminal(label string) string {
	if full, ok := terminalNames[label]; ok {
		return full
	}
	return label
}
