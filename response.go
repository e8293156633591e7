package webfetch

// Content format values reported by the generic fetch path.
const (
	FormatMarkdown = "markdown"
	FormatText     = "text"
	FormatRaw      = "raw"
)

// Response is the result of a fetch. Optional fields are omitted from the
// serialized form when absent; Size uses a pointer so a present zero is
// distinguishable from absent.
type Response struct {
	// URL that was fetched.
	URL string `json:"url"`

	// StatusCode is the HTTP status code.
	StatusCode int `json:"status_code"`

	// ContentType is the Content-Type header value, if any.
	ContentType string `json:"content_type,omitempty"`

	// Size is the number of raw bytes read from the body, or the
	// Content-Length for HEAD requests.
	Size *int64 `json:"size,omitempty"`

	// LastModified is the Last-Modified header value, if any.
	LastModified string `json:"last_modified,omitempty"`

	// Filename derived from Content-Disposition or the URL path.
	Filename string `json:"filename,omitempty"`

	// Format is "markdown", "text", or "raw".
	Format string `json:"format,omitempty"`

	// Content is the fetched and possibly converted body.
	Content string `json:"content,omitempty"`

	// Truncated is present only when the body deadline cut the read short.
	Truncated bool `json:"truncated,omitempty"`

	// Method is "HEAD" for HEAD requests, absent otherwise.
	Method string `json:"method,omitempty"`

	// Error explains body-less outcomes such as binary content or a
	// specialized fetcher failure. Never set together with Content by the
	// generic path.
	Error string `json:"error,omitempty"`
}

// Int64 returns a pointer to v, for optional numeric response fields.
func Int64(v int64) *int64 {
	return &v
}
