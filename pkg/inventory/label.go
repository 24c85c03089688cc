package inventory

import (
	"regexp"
	"strings"
)

// nameMap translates romanized passenger names on ticket files back to the
// names travelers actually go by.
var nameMap = map[string]string{
	"CHAO HSIANG LING": "趙湘鈴",
	"WANG SHENG CHIEH": "王聖傑",
	"WANG SHENG CHIH":  "王聖智",
	"WANG HSIN HSIUNG": "王信雄",
	"HSU HSIU CHUN":    "徐秀春",
}

var (
	seatRe = []struct {
		re    *regexp.Regexp
		label string
	}{
		{regexp.MustCompile(`(?i)^1p$`), "1P"},
		{regexp.MustCompile(`(?i)^2p_?1$`), "2P-1"},
		{regexp.MustCompile(`(?i)^2p_?2$`), "2P-2"},
		{regexp.MustCompile(`(?i)^2p$`), "2P"},
		{regexp.MustCompile(`(?i)^3p$`), "3P"},
	}
	dateRangeRe  = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	spacedDashRe = regexp.MustCompile(`\s*-\s*`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	extRe        = regexp.MustCompile(`\.[^/.]+$`)
)

// Label derives a friendly display label from a stored file name: known
// passenger names translate, room-group codes normalize, date ranges
// compact, and anything else gets generic cleanup.
func Label(filename string) string {
	base := strings.TrimSpace(extRe.ReplaceAllString(filename, ""))
	if name, ok := nameMap[base]; ok {
		return name
	}
	for _, p := range seatRe {
		if p.re.MatchString(base) {
			return p.label
		}
	}
	if m := dateRangeRe.FindStringSubmatch(base); m != nil {
		return m[1] + "-" + m[2]
	}
	return prettify(base)
}

func prettify(name string) string {
	name = strings.ReplaceAll(name, "_", "-")
	name = spacedDashRe.ReplaceAllString(name, "-")
	name = whitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
