package normalize

import "strings"

const upperhex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s for use inside a URL path segment or
// fragment. Unlike net/url it leaves !, ~, *, ' and parentheses alone and
// escapes every other non-alphanumeric byte, which keeps generated links
// byte-identical to ones produced by browser tooling.
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '!' || c == '~' ||
			c == '*' || c == '\'' || c == '(' || c == ')':
			b.WriteByte(c)
		default:
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&0xf])
		}
	}
	return b.String()
}
