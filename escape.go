package chatpager

import (
	"strings"
	"unicode/utf8"
)

// Escaper neutralizes markup-significant characters of a raw item before it is
// interpolated into a page.
type Escaper func(string) string

const (
	minedownColorChar      = '&'
	minedownLegacyColor    = '§'
	minedownEscapeChar     = '\\'
	minedownDoubleFormats  = "*_~?#"
	minedownEventOpenChar  = '['
	minedownEventCloseChar = ']'
)

// EscapeMineDown escapes a raw string so that a MineDown renderer prints it literally.
// A backslash is inserted before:
//   - backslashes;
//   - color codes ('&' or '§' followed by any character);
//   - '[' opening an event, i.e. followed later by an unescaped ']';
//   - doubled formatting markers ("**", "__", "~~", "??", "##").
func EscapeMineDown(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		hasNext := next < len(s)

		escape := false
		switch {
		case r == minedownEscapeChar:
			escape = true
		case (r == minedownColorChar || r == minedownLegacyColor) && hasNext:
			escape = true
		case r == minedownEventOpenChar:
			escape = unescapedIndex(s, next, minedownEventCloseChar) != -1
		case hasNext && strings.ContainsRune(minedownDoubleFormats, r) && s[next] == byte(r):
			escape = true
		}

		if escape {
			b.WriteByte(minedownEscapeChar)
		}
		// Original bytes, so invalid UTF-8 passes through unchanged.
		b.WriteString(s[i:next])
		i = next
	}

	return b.String()
}

// NoEscape returns the raw string unchanged.
func NoEscape(s string) string {
	return s
}

func unescapedIndex(s string, from int, target byte) int {
	for i := from; i < len(s); i++ {
		if s[i] == target && s[i-1] != minedownEscapeChar {
			return i
		}
	}

	return -1
}
