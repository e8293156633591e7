package mock

import (
	"context"
	"net/url"

	"github.com/fwojciec/webfetch"
)

var _ webfetch.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of webfetch.Fetcher.
type Fetcher struct {
	NameFn    func() string
	MatchesFn func(u *url.URL) bool
	FetchFn   func(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error)
}

func (f *Fetcher) Name() string {
	return f.NameFn()
}

func (f *Fetcher) Matches(u *url.URL) bool {
	return f.MatchesFn(u)
}

func (f *Fetcher) Fetch(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
	return f.FetchFn(ctx, req, opts)
}
