package maplink

// airlineNames maps IATA airline codes to display names. Only codes listed
// here are treated as airline markers during flight extraction; unknown
// two-letter tokens stay in the map link untouched.
var airlineNames = map[string]string{
	"UA": "美國聯合航空",
	"CI": "中華航空",
	"BR": "長榮航空",
	"JX": "星宇航空",
	"NH": "全日空",
	"JL": "日本航空",
}

// AirlineName returns the display name for an IATA airline code. The
// second return is false for codes outside the table.
func AirlineName(code string) (string, bool) {
	name, ok := airlineNames[code]
	return name, ok
}
