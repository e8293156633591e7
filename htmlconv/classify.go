package htmlconv

import (
	"strings"
	"unicode"
)

// binaryPrefixes are content-type prefixes that indicate a body with no
// useful textual rendering.
var binaryPrefixes = []string{
	"image/",
	"audio/",
	"video/",
	"application/octet-stream",
	"application/pdf",
	"application/zip",
	"application/gzip",
	"application/x-tar",
	"application/x-rar",
	"application/x-7z",
	"application/vnd.ms-",
	"application/vnd.openxmlformats",
	"font/",
}

// IsHTML reports whether a body should be treated as HTML, either by the
// declared content type or by sniffing the body prefix. The sniff rescues
// servers that mis-declare their content type.
func IsHTML(contentType, body string) bool {
	if contentType != "" {
		ct := strings.ToLower(contentType)
		if strings.Contains(ct, "text/html") || strings.Contains(ct, "application/xhtml") {
			return true
		}
	}

	trimmed := strings.TrimLeftFunc(body, unicode.IsSpace)
	if len(trimmed) > 16 {
		trimmed = trimmed[:16]
	}
	start := strings.ToLower(trimmed)
	return strings.HasPrefix(start, "<!doctype") || strings.HasPrefix(start, "<html")
}

// IsBinaryContentType reports whether the declared content type matches
// the fixed binary prefix set. Binary detection short-circuits body
// reading entirely.
func IsBinaryContentType(contentType string) bool {
	ct := strings.ToLower(contentType)
	for _, prefix := range binaryPrefixes {
		if strings.HasPrefix(ct, prefix) {
			return true
		}
	}
	return false
}
