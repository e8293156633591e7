// Package htmlconv converts HTML to Markdown or plain text in a single
// forward pass, without building a DOM. The scanner classifies <...>
// spans by their first token, tracks a small amount of nesting state, and
// best-effort skips anything malformed. No input can make it fail.
package htmlconv

import "strings"

// Mode selects the output produced by Convert.
type Mode int

const (
	// Markdown emits simplified Markdown markup.
	Markdown Mode = iota
	// Text emits plain text with structural newlines only.
	Text
)

// skipTags lists elements whose content is excluded entirely.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
}

// ToMarkdown converts HTML to simplified Markdown.
func ToMarkdown(html string) string {
	return Convert(html, Markdown)
}

// ToText converts HTML to plain text.
func ToText(html string) string {
	return Convert(html, Text)
}

// Convert walks the input character by character, emitting tokens for the
// given mode, decoding entities in text runs, and cleaning whitespace as
// a final pass.
func Convert(html string, mode Mode) string {
	var out strings.Builder
	var skipStack []string
	listDepth := 0
	inPre := false
	inBlockquote := false

	in := []rune(html)
	i := 0
	for i < len(in) {
		c := in[i]
		i++

		if c == '<' {
			start := i
			for i < len(in) && in[i] != '>' {
				i++
			}
			tag := string(in[start:i])
			if i < len(in) {
				i++ // consume '>'
			}

			tagLower := strings.ToLower(tag)
			closing := strings.HasPrefix(tagLower, "/")
			name := tagLower
			if closing {
				name = name[1:]
			}
			name = firstToken(name)

			if skipTags[name] {
				if closing {
					// Closers match the rightmost open frame by name, not
					// strict nesting order: <script>..<style>..</script>
					// closes the script frame while the style frame stays
					// open. Kept as-is; fixtures depend on this recovery.
					for j := len(skipStack) - 1; j >= 0; j-- {
						if skipStack[j] == name {
							skipStack = append(skipStack[:j], skipStack[j+1:]...)
							break
						}
					}
				} else if !strings.HasSuffix(tag, "/") {
					skipStack = append(skipStack, name)
				}
				continue
			}
			if len(skipStack) > 0 {
				continue
			}

			if mode == Markdown {
				markdownTag(&out, tag, name, closing, &listDepth, &inPre, &inBlockquote)
			} else {
				textTag(&out, name, closing)
			}
			continue
		}

		if len(skipStack) > 0 {
			continue
		}

		r := c
		if c == '&' {
			r, i = decodeEntity(in, i)
		}
		if inBlockquote && r == '\n' {
			out.WriteString("\n> ")
		} else {
			out.WriteRune(r)
		}
	}

	return CleanWhitespace(out.String())
}

// markdownTag applies the Markdown effect of a single tag.
func markdownTag(out *strings.Builder, tag, name string, closing bool, listDepth *int, inPre, inBlockquote *bool) {
	switch name {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		if closing {
			out.WriteString("\n\n")
		} else {
			level := int(name[1] - '0')
			out.WriteString("\n" + strings.Repeat("#", level) + " ")
		}
	case "p", "div", "section", "article", "main", "header", "footer":
		if closing {
			out.WriteString("\n\n")
		}
	case "br":
		out.WriteString("\n")
	case "hr":
		if !closing {
			out.WriteString("\n---\n")
		}
	case "ul", "ol":
		if closing {
			if *listDepth > 0 {
				*listDepth--
			}
			if *listDepth == 0 {
				out.WriteString("\n")
			}
		} else {
			*listDepth++
		}
	case "li":
		if !closing {
			out.WriteString("\n")
			if *listDepth > 1 {
				out.WriteString(strings.Repeat("  ", *listDepth-1))
			}
			out.WriteString("- ")
		}
	case "strong", "b":
		out.WriteString("**")
	case "em", "i":
		out.WriteString("*")
	case "pre":
		out.WriteString("\n```\n")
		*inPre = !closing
	case "code":
		if !*inPre {
			out.WriteString("`")
		}
	case "blockquote":
		if closing {
			*inBlockquote = false
			out.WriteString("\n")
		} else {
			*inBlockquote = true
			out.WriteString("\n> ")
		}
	case "a":
		if !closing {
			if href, ok := attribute(tag, "href"); ok {
				// Simplified link form: the href lands right after the
				// brackets and the link text flows outside them. Not true
				// Markdown link syntax, reproduced deliberately.
				out.WriteString("[](" + href + ")")
			}
		}
	}
}

// textTag applies the plain-text effect of a single tag: structural
// newlines only, no visual markup.
func textTag(out *strings.Builder, name string, closing bool) {
	switch name {
	case "br":
		out.WriteString("\n")
	case "p", "h1", "h2", "h3", "h4", "h5", "h6":
		out.WriteString("\n")
	case "div", "li", "tr":
		if closing {
			out.WriteString("\n")
		}
	}
}

// firstToken returns the first whitespace-delimited token of s.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// attribute extracts an attribute value from a raw tag body. Quoted
// (single or double) and bare values are supported; the attribute name is
// matched case-insensitively.
func attribute(tag, attr string) (string, bool) {
	pattern := attr + "="
	idx := strings.Index(strings.ToLower(tag), pattern)
	if idx < 0 {
		return "", false
	}
	rest := strings.TrimLeft(tag[idx+len(pattern):], " \t\r\n")

	if after, ok := strings.CutPrefix(rest, `"`); ok {
		if end := strings.Index(after, `"`); end >= 0 {
			return after[:end], true
		}
		return "", false
	}
	if after, ok := strings.CutPrefix(rest, `'`); ok {
		if end := strings.Index(after, `'`); end >= 0 {
			return after[:end], true
		}
		return "", false
	}
	end := strings.IndexFunc(rest, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '>'
	})
	if end < 0 {
		end = len(rest)
	}
	return rest[:end], true
}
