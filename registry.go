package webfetch

import (
	"context"
	"net/url"
	"strings"
)

// Registry dispatches requests to the first matching fetcher in
// registration order. Registration order encodes priority: specialized
// fetchers must be registered ahead of the generic one.
type Registry struct {
	fetchers []Fetcher
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a fetcher. Fetchers are matched in registration order.
func (r *Registry) Register(f Fetcher) {
	r.fetchers = append(r.fetchers, f)
}

// Fetch validates the request, applies the allow/block prefix lists, and
// delegates to the first fetcher whose Matches returns true. A nil opts
// is treated as DefaultOptions.
func (r *Registry) Fetch(ctx context.Context, req *Request, opts *Options) (*Response, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	parsed, err := url.Parse(req.URL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid URL: must start with http:// or https://")
	}

	if len(opts.AllowPrefixes) > 0 {
		allowed := false
		for _, prefix := range opts.AllowPrefixes {
			if strings.HasPrefix(req.URL, prefix) {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, Errorf(EBLOCKED, "blocked URL: prefix not allowed")
		}
	}
	for _, prefix := range opts.BlockPrefixes {
		if strings.HasPrefix(req.URL, prefix) {
			return nil, Errorf(EBLOCKED, "blocked URL: prefix not allowed")
		}
	}

	for _, f := range r.fetchers {
		if f.Matches(parsed) {
			return f.Fetch(ctx, req, opts)
		}
	}

	// Unreachable once a catch-all fetcher is registered.
	return nil, Errorf(EINTERNAL, "no fetcher available for URL")
}
