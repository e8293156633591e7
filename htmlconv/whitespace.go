package htmlconv

import (
	"strings"
	"unicode"
)

// CleanWhitespace normalizes whitespace in converted output: runs of
// non-newline whitespace collapse to a single space, runs of newlines cap
// at two, spaces immediately preceding a newline are dropped, and the
// whole string is trimmed. Idempotent.
func CleanWhitespace(s string) string {
	out := make([]rune, 0, len(s))
	lastWasSpace := false
	newlines := 0

	for _, c := range s {
		switch {
		case c == '\n':
			if lastWasSpace && len(out) > 0 && out[len(out)-1] == ' ' {
				out = out[:len(out)-1]
			}
			newlines++
			lastWasSpace = true
			if newlines <= 2 {
				out = append(out, c)
			}
		case unicode.IsSpace(c):
			newlines = 0
			if !lastWasSpace {
				out = append(out, ' ')
				lastWasSpace = true
			}
		default:
			newlines = 0
			lastWasSpace = false
			out = append(out, c)
		}
	}

	return strings.TrimSpace(string(out))
}

// FilterExcessiveNewlines caps runs of newlines at two, leaving all other
// characters untouched. Used for content that did not go through full tag
// conversion. Idempotent.
func FilterExcessiveNewlines(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	newlines := 0

	for _, c := range s {
		if c == '\n' {
			newlines++
			if newlines <= 2 {
				b.WriteRune(c)
			}
			continue
		}
		newlines = 0
		b.WriteRune(c)
	}

	return b.String()
}
