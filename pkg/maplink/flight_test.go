package maplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripweave/tripweave/pkg/trip"
)

func TestExtractFlightCombinedToken(t *testing.T) {
	info, cleaned, note := ExtractFlight(
		[]string{"https://maps.app.goo.gl/a,成田國際機場第二航廈,https://maps.app.goo.gl/b,CI126"},
		"")
	require.NotNil(t, info)
	assert.Equal(t, trip.FlightInfo{AirlineCode: "CI", FlightNumber: "126"}, *info)
	assert.Equal(t, "https://maps.app.goo.gl/a,成田國際機場第二航廈,https://maps.app.goo.gl/b", cleaned)
	assert.Empty(t, note)
}

func TestExtractFlightAirlineCodePlusNote(t *testing.T) {
	info, cleaned, note := ExtractFlight(
		[]string{"https://maps.app.goo.gl/a,高雄國際機場,https://maps.app.goo.gl/b,UA"},
		"837")
	require.NotNil(t, info)
	assert.Equal(t, trip.FlightInfo{AirlineCode: "UA", FlightNumber: "837"}, *info)
	assert.Equal(t, "https://maps.app.goo.gl/a,高雄國際機場,https://maps.app.goo.gl/b", cleaned)
	assert.Empty(t, note, "note consumed as flight number")
}

func TestExtractFlightAirlineCodeWithoutNote(t *testing.T) {
	// A lone airline code with no usable note goes back into the link.
	info, cleaned, note := ExtractFlight([]string{"https://maps.app.goo.gl/a,UA"}, "出發層")
	assert.Nil(t, info)
	assert.Equal(t, "https://maps.app.goo.gl/a,UA", cleaned)
	assert.Equal(t, "出發層", note)
}

func TestExtractFlightUnknownAirlineCode(t *testing.T) {
	// Two uppercase letters that are not a known airline stay put.
	info, cleaned, _ := ExtractFlight([]string{"https://maps.app.goo.gl/a,XY"}, "123")
	assert.Nil(t, info)
	assert.Equal(t, "https://maps.app.goo.gl/a,XY", cleaned)
}

func TestExtractFlightNoLink(t *testing.T) {
	info, cleaned, note := ExtractFlight(nil, "837")
	assert.Nil(t, info)
	assert.Empty(t, cleaned)
	assert.Equal(t, "837", note)
}

func TestAirlineName(t *testing.T) {
	name, ok := AirlineName("CI")
	assert.True(t, ok)
	assert.Equal(t, "中華航空", name)

	_, ok = AirlineName("ZZ")
	assert.False(t, ok)
}
