package htmlconv

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// decodeEntity decodes a character entity. in[i] is the first character
// after the '&'; the returned index points past the consumed entity text.
// Decoding aborts on whitespace or after more than 10 accumulated
// characters, leaving the ampersand literal. An unrecognized or
// unmappable entity also decodes to a literal '&', dropping the entity
// text rather than echoing it.
func decodeEntity(in []rune, i int) (rune, int) {
	var entity []rune
	for i < len(in) {
		c := in[i]
		if c == ';' {
			i++
			break
		}
		if unicode.IsSpace(c) || len(entity) > 10 {
			return '&', i
		}
		entity = append(entity, c)
		i++
	}
	return entityRune(string(entity)), i
}

// entityRune maps an entity name (without '&' and ';') to its code point.
func entityRune(entity string) rune {
	switch entity {
	case "amp":
		return '&'
	case "lt":
		return '<'
	case "gt":
		return '>'
	case "quot":
		return '"'
	case "apos", "#39":
		return '\''
	case "nbsp":
		return ' '
	case "mdash":
		return '—'
	case "ndash":
		return '–'
	case "copy":
		return '©'
	case "reg":
		return '®'
	}

	if num, ok := strings.CutPrefix(entity, "#"); ok {
		base := 10
		if hex, ok := strings.CutPrefix(num, "x"); ok {
			num, base = hex, 16
		}
		if code, err := strconv.ParseUint(num, base, 32); err == nil {
			if r := rune(code); utf8.ValidRune(r) {
				return r
			}
		}
	}

	return '&'
}
