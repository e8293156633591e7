package http

import (
	"net/url"
	"strings"
	"unicode"
)

// extractFilename derives a filename from the Content-Disposition header,
// falling back to the last non-empty URL path segment when it contains a
// dot. Returns "" when neither yields one.
func extractFilename(disposition, rawURL string) string {
	if disposition != "" {
		if name := dispositionFilename(disposition); name != "" {
			return name
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	segments := strings.Split(parsed.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == "" {
			continue
		}
		if strings.Contains(segments[i], ".") {
			return segments[i]
		}
		break
	}
	return ""
}

// dispositionFilename parses the filename= parameter, quoted or bare.
// The parameter name matches case-insensitively; a bare value stops at
// whitespace or a semicolon.
func dispositionFilename(value string) string {
	idx := strings.Index(strings.ToLower(value), "filename=")
	if idx < 0 {
		return ""
	}
	rest := value[idx+len("filename="):]

	if after, ok := strings.CutPrefix(rest, `"`); ok {
		if end := strings.Index(after, `"`); end >= 0 {
			return after[:end]
		}
		return ""
	}

	end := strings.IndexFunc(rest, func(r rune) bool {
		return unicode.IsSpace(r) || r == ';'
	})
	if end < 0 {
		end = len(rest)
	}
	return strings.Trim(rest[:end], `"`)
}
