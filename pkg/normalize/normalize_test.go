package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		title string
		want  string
	}{
		{
			name:  "pads single digit month and day",
			date:  "2026/1/4 (日)",
			title: "賽馬體驗",
			want:  "2026-01-04|賽馬體驗",
		},
		{
			name:  "strips weekday suffix",
			date:  "2025/12/31 (三)",
			title: "自宅出發",
			want:  "2025-12-31|自宅出發",
		},
		{
			name:  "strips spaces and joining punctuation",
			date:  "2026/01/03 (六)",
			title: "入住 東京六本木凱富飯店",
			want:  "2026-01-03|入住東京六本木凱富飯店",
		},
		{
			name:  "parenthesis variants collide",
			date:  "2026/01/05 (一)",
			title: "貴賓室體驗 (希和 -NOA-)",
			want:  "2026-01-05|貴賓室體驗希和NOA",
		},
		{
			name:  "full-width punctuation folds to half-width and drops",
			date:  "2026/01/02 (五)",
			title: "河口湖纜車、遊覽船",
			want:  "2026-01-02|河口湖纜車遊覽船",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Key(tt.date, tt.title))
		})
	}
}

func TestDate(t *testing.T) {
	assert.Equal(t, "2025-12-31", Date("2025/12/31 (三)"))
	assert.Equal(t, "2026-01-05", Date("2026/1/5"))
	// Unparseable input passes through.
	assert.Equal(t, "soon", Date("soon"))
}

func TestBaseTitle(t *testing.T) {
	assert.Equal(t, "租車", BaseTitle("租車 (日産レンタカー)"))
	assert.Equal(t, "Skyliner", BaseTitle("Skyliner (京成上野)"))
	assert.Equal(t, "午餐：大衆鰻 うな富士", BaseTitle("午餐：大衆鰻 うな富士"))
}

func TestFoldWidth(t *testing.T) {
	// Full-width ASCII folds, kana and ideographs survive.
	assert.Equal(t, "(希和)", FoldWidth("（希和）"))
	assert.Equal(t, "うな富士", FoldWidth("うな富士"))
}

func TestPlaceLabel(t *testing.T) {
	assert.Equal(t, "家", PlaceLabel("我家"))
	assert.Equal(t, "家", PlaceLabel(" 我家 "))
	assert.Equal(t, "成田國際機場", PlaceLabel("成田國際機場"))
	assert.Equal(t, "", PlaceLabel(""))
}

func TestForDescriptionMatch(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"御殿場 PREMIUM OUTLETS", "御殿場premiumoutlets"},
		{"貴賓室體驗 (希和 -NOA-)", "貴賓室體驗"},
		{"大阪焼肉・ホルモン ふたご 六本木店", "大阪焼肉ホルモンふたご六本木店"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ForDescriptionMatch(tt.in), "input %q", tt.in)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		title string
		want  string
	}{
		{
			name:  "basic",
			date:  "2025/12/31 (三)",
			title: "自宅出發",
			want:  "2025-12-31__自宅出發",
		},
		{
			name:  "spaces and parens become dashes",
			date:  "2026/01/05 (一)",
			title: "貴賓室體驗 (希和 -NOA-)",
			want:  "2026-01-05__貴賓室體驗-希和--noa-",
		},
		{
			name:  "latin lowercases",
			date:  "2026/01/05 (一)",
			title: "Skyliner (京成上野)",
			want:  "2026-01-05__skyliner-京成上野",
		},
		{
			name:  "kana is dropped",
			date:  "2026/01/02 (五)",
			title: "入住富士山ヴィラス和楽",
			want:  "2026-01-02__入住富士山和楽",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.date, tt.title))
		})
	}
}

func TestEscapeComponent(t *testing.T) {
	// Mirrors browser-style component encoding: !*'() stay literal.
	assert.Equal(t, "a-b_c.d!e~f*g'h(i)j", EscapeComponent("a-b_c.d!e~f*g'h(i)j"))
	assert.Equal(t, "subject%3A%22hello%20world%22", EscapeComponent(`subject:"hello world"`))
	assert.Equal(t, "%E5%AE%B6", EscapeComponent("家"))
}

func TestAliasesResolve(t *testing.T) {
	aliases := Aliases{"租車": "租車 (日産レンタカー)"}
	assert.Equal(t, "租車 (日産レンタカー)", aliases.Resolve("租車"))
	assert.Equal(t, "租車 (日産レンタカー)", aliases.Resolve(" 租車 "))
	assert.Equal(t, "還車", aliases.Resolve("還車"))
}
