package webfetch

import "strings"

// Method is the HTTP method used for a fetch.
type Method string

// Supported methods.
const (
	MethodGet  Method = "GET"
	MethodHead Method = "HEAD"
)

// ParseMethod parses a case-insensitive method name.
// The empty string parses as GET.
func ParseMethod(s string) (Method, error) {
	switch strings.ToUpper(s) {
	case "", "GET":
		return MethodGet, nil
	case "HEAD":
		return MethodHead, nil
	}
	return "", Errorf(EINVALID, "invalid method: must be GET or HEAD")
}

// Request describes a single fetch. It is immutable once constructed and
// owned by the caller.
type Request struct {
	// URL to fetch. Required, must start with http:// or https://.
	URL string `json:"url"`

	// Method is GET when empty.
	Method Method `json:"method,omitempty"`

	// AsMarkdown requests HTML to Markdown conversion.
	AsMarkdown bool `json:"as_markdown,omitempty"`

	// AsText requests HTML to plain text conversion.
	// Markdown wins when both conversion flags are set.
	AsText bool `json:"as_text,omitempty"`
}

// EffectiveMethod returns the method, defaulting to GET.
func (r *Request) EffectiveMethod() Method {
	if r.Method == "" {
		return MethodGet
	}
	return r.Method
}

// Validate checks the request fields. It runs before any network call.
func (r *Request) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "missing required parameter: url")
	}
	if !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return Errorf(EINVALID, "invalid URL: must start with http:// or https://")
	}
	switch r.Method {
	case "", MethodGet, MethodHead:
	default:
		return Errorf(EINVALID, "invalid method: must be GET or HEAD")
	}
	return nil
}
