package maplink

import (
	"regexp"
	"strings"

	"github.com/tripweave/tripweave/pkg/trip"
)

var (
	flightCodeRe   = regexp.MustCompile(`^([A-Z]{2})(\d{2,4})$`)
	airlineOnlyRe  = regexp.MustCompile(`^[A-Z]{2}$`)
	flightNumberRe = regexp.MustCompile(`^\d{2,4}$`)
)

// ExtractFlight pulls a flight designator out of the map-link tokens
// before link parsing sees them. A combined token like "CI126" becomes
// flight info directly. A bare airline code like "UA" pairs with a note
// that is nothing but a flight number, consuming the note; when the note
// does not cooperate the code token is kept in the link. Returns the
// flight info (nil when none), the cleaned comma-joined map link, and the
// possibly consumed note.
func ExtractFlight(mapLink []string, note string) (*trip.FlightInfo, string, string) {
	if len(mapLink) == 0 {
		return nil, "", note
	}

	var (
		info         *trip.FlightInfo
		cleanedParts []string
		airlineCode  string
	)

	for _, part := range strings.Split(strings.Join(mapLink, ","), ",") {
		part = strings.TrimSpace(part)
		if m := flightCodeRe.FindStringSubmatch(part); m != nil {
			info = &trip.FlightInfo{AirlineCode: m[1], FlightNumber: m[2]}
			continue
		}
		if airlineOnlyRe.MatchString(part) {
			if _, known := AirlineName(part); known {
				airlineCode = part
				continue
			}
		}
		cleanedParts = append(cleanedParts, part)
	}

	if airlineCode != "" {
		if trimmed := strings.TrimSpace(note); flightNumberRe.MatchString(trimmed) {
			info = &trip.FlightInfo{AirlineCode: airlineCode, FlightNumber: trimmed}
			note = ""
		} else {
			cleanedParts = append(cleanedParts, airlineCode)
		}
	}

	return info, strings.Join(cleanedParts, ","), note
}
