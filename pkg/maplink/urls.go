package maplink

import (
	"regexp"
	"strings"

	"github.com/tripweave/tripweave/pkg/normalize"
	"github.com/tripweave/tripweave/pkg/trip"
)

const (
	googleMapsSearchBase = "https://www.google.com/maps/search/?api=1"
	gmailSearchBase      = "https://mail.google.com/mail/u/0/#search/"
	tripComStatusBase    = "https://tw.trip.com/flights/status-"
)

var flightNoRe = regexp.MustCompile(`^[a-z]{2}\d+$`)

// GoogleMapsURL returns the open-in-maps URL for a target: the target's
// own URL when it carries one, a maps search for its query otherwise.
// Returns "" for a target with neither.
func GoogleMapsURL(target trip.MapTarget) string {
	if target.URL != "" {
		return target.URL
	}
	if target.Query != "" {
		return googleMapsSearchBase + "&query=" + normalize.EscapeComponent(target.Query)
	}
	return ""
}

// GmailSearchURL builds a Gmail deep link searching for mails with the
// exact subject.
func GmailSearchURL(subject string) string {
	query := `subject:"` + subject + `"`
	return gmailSearchBase + normalize.EscapeComponent(query)
}

// TripComFlightStatusURL builds the Trip.com live-status URL for a flight
// designator like "CI126". The second return is false when the input is
// not a two-letter airline code followed by digits.
func TripComFlightStatusURL(flightNo string) (string, bool) {
	clean := strings.ToLower(strings.Join(strings.Fields(flightNo), ""))
	if !flightNoRe.MatchString(clean) {
		return "", false
	}
	return tripComStatusBase + clean + "/", true
}
