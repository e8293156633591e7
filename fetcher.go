package webfetch

import (
	"context"
	"net/url"
)

// Options configure fetch behavior for an engine instance. An Options
// value is read-only once built and may be shared by any number of
// concurrent in-flight requests without synchronization.
type Options struct {
	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string

	// AllowPrefixes, when non-empty, restricts URLs to those starting
	// with one of the listed prefixes.
	AllowPrefixes []string

	// BlockPrefixes rejects URLs starting with any listed prefix. The
	// block list is checked even when the allow list passes.
	BlockPrefixes []string

	// EnableMarkdown gates the request-level AsMarkdown flag.
	EnableMarkdown bool

	// EnableText gates the request-level AsText flag.
	EnableText bool
}

// DefaultOptions returns Options with both conversion modes enabled.
func DefaultOptions() *Options {
	return &Options{EnableMarkdown: true, EnableText: true}
}

// UserAgentOrDefault returns the configured user agent, or
// DefaultUserAgent when unset.
func (o *Options) UserAgentOrDefault() string {
	if o == nil || o.UserAgent == "" {
		return DefaultUserAgent
	}
	return o.UserAgent
}

// Fetcher produces responses for URLs it declares a match on.
type Fetcher interface {
	// Name identifies the fetcher for logging and debugging.
	Name() string

	// Matches reports whether this fetcher handles the given URL.
	// More specific fetchers must be registered before generic ones.
	Matches(u *url.URL) bool

	// Fetch retrieves content for the request. Called only when Matches
	// returned true. The context controls cancellation.
	Fetch(ctx context.Context, req *Request, opts *Options) (*Response, error)
}
