// Package http provides the generic HTTP implementation of
// webfetch.Fetcher. It is the catch-all content source: any http/https
// URL not claimed by a specialized fetcher lands here.
package http

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/htmlconv"
)

const (
	// DefaultFirstByteTimeout bounds DNS, connect, TLS, and response
	// headers. Exceeding it is an error: no body has been seen yet.
	DefaultFirstByteTimeout = 1 * time.Second

	// DefaultBodyTimeout bounds cumulative body transfer. Exceeding it
	// yields partial content, never an error.
	DefaultBodyTimeout = 30 * time.Second
)

// truncationNotice is appended to content cut short by the body deadline
// so downstream consumers can detect truncation from the text alone.
const truncationNotice = "\n\n[..more content timed out...]"

// binaryContentError explains why binary bodies are never returned.
const binaryContentError = "Binary content is not supported. Only textual content (HTML, text, JSON, etc.) can be fetched."

// Ensure Fetcher implements webfetch.Fetcher at compile time.
var _ webfetch.Fetcher = (*Fetcher)(nil)

// Fetcher is the generic HTTP fetcher: GET/HEAD, binary detection,
// bounded body reads, and HTML conversion. Safe for concurrent use.
type Fetcher struct {
	client           *http.Client
	firstByteTimeout time.Duration
	bodyTimeout      time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFirstByteTimeout sets the deadline covering connect, TLS, and
// response headers. Defaults to DefaultFirstByteTimeout.
func WithFirstByteTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.firstByteTimeout = d
	}
}

// WithBodyTimeout sets the deadline covering total body transfer.
// Defaults to DefaultBodyTimeout.
func WithBodyTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.bodyTimeout = d
	}
}

// WithClient substitutes the underlying HTTP client, bypassing the
// first-byte transport configuration. Intended for tests.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a generic HTTP fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		firstByteTimeout: DefaultFirstByteTimeout,
		bodyTimeout:      DefaultBodyTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		// The transport carries the first-byte deadline in three pieces
		// so the body read stays unbounded here; the body deadline is
		// enforced per-chunk in ReadBounded.
		f.client = &http.Client{
			Transport: &http.Transport{
				DialContext:           (&net.Dialer{Timeout: f.firstByteTimeout}).DialContext,
				TLSHandshakeTimeout:   f.firstByteTimeout,
				ResponseHeaderTimeout: f.firstByteTimeout,
			},
		}
	}
	return f
}

// Name implements webfetch.Fetcher.
func (f *Fetcher) Name() string {
	return "default"
}

// Matches implements webfetch.Fetcher. The generic fetcher matches every
// URL and must therefore be registered last.
func (f *Fetcher) Matches(_ *url.URL) bool {
	return true
}

// Fetch implements webfetch.Fetcher. HTTP error statuses (4xx/5xx) are
// successful fetches carrying the status code; only transport-level
// failures return an error.
func (f *Fetcher) Fetch(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	method := req.EffectiveMethod()
	wantsMarkdown := opts != nil && opts.EnableMarkdown && req.AsMarkdown
	wantsText := opts != nil && opts.EnableText && req.AsText

	httpReq, err := http.NewRequestWithContext(ctx, string(method), req.URL, nil)
	if err != nil {
		return nil, webfetch.Errorf(webfetch.EINVALID, "invalid URL: must start with http:// or https://")
	}
	httpReq.Header.Set("User-Agent", opts.UserAgentOrDefault())
	httpReq.Header.Set("Accept", acceptHeader(wantsMarkdown, wantsText))

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return nil, webfetch.ClassifyTransportError(err)
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	lastModified := resp.Header.Get("Last-Modified")
	filename := extractFilename(resp.Header.Get("Content-Disposition"), req.URL)

	var contentLength *int64
	if resp.ContentLength >= 0 {
		contentLength = webfetch.Int64(resp.ContentLength)
	}

	if method == webfetch.MethodHead {
		return &webfetch.Response{
			URL:          req.URL,
			StatusCode:   resp.StatusCode,
			ContentType:  contentType,
			Size:         contentLength,
			LastModified: lastModified,
			Filename:     filename,
			Method:       "HEAD",
		}, nil
	}

	if contentType != "" && htmlconv.IsBinaryContentType(contentType) {
		return &webfetch.Response{
			URL:          req.URL,
			StatusCode:   resp.StatusCode,
			ContentType:  contentType,
			Size:         contentLength,
			LastModified: lastModified,
			Filename:     filename,
			Error:        binaryContentError,
		}, nil
	}

	body, truncated := ReadBounded(resp.Body, f.bodyTimeout)
	size := int64(len(body))

	// Lossy UTF-8: invalid sequences become replacement characters.
	content := strings.ToValidUTF8(string(body), "�")

	format := webfetch.FormatRaw
	if htmlconv.IsHTML(contentType, content) {
		if wantsMarkdown {
			format = webfetch.FormatMarkdown
			content = htmlconv.ToMarkdown(content)
		} else if wantsText {
			format = webfetch.FormatText
			content = htmlconv.ToText(content)
		}
	}

	content = htmlconv.FilterExcessiveNewlines(content)
	if truncated {
		content += truncationNotice
	}

	return &webfetch.Response{
		URL:          req.URL,
		StatusCode:   resp.StatusCode,
		ContentType:  contentType,
		Size:         &size,
		LastModified: lastModified,
		Filename:     filename,
		Format:       format,
		Content:      content,
		Truncated:    truncated,
	}, nil
}

// acceptHeader advertises the content types useful for the requested
// conversion mode.
func acceptHeader(wantsMarkdown, wantsText bool) string {
	switch {
	case wantsMarkdown:
		return "text/html, text/markdown, text/plain, */*;q=0.8"
	case wantsText:
		return "text/html, text/plain, */*;q=0.8"
	default:
		return "*/*"
	}
}
