// Package slog provides logging decorators for webfetch services.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/webfetch"
)

// Ensure LoggingFetcher implements webfetch.Fetcher.
var _ webfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging.
type LoggingFetcher struct {
	next   webfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next webfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Name delegates to the wrapped fetcher.
func (f *LoggingFetcher) Name() string {
	return f.next.Name()
}

// Matches delegates to the wrapped fetcher.
func (f *LoggingFetcher) Matches(u *url.URL) bool {
	return f.next.Matches(u)
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
	begin := time.Now()
	resp, err := f.next.Fetch(ctx, req, opts)
	if err != nil {
		f.logger.Error("fetch failed",
			"fetcher", f.next.Name(),
			"url", req.URL,
			"code", webfetch.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"fetcher", f.next.Name(),
		"url", req.URL,
		"status", resp.StatusCode,
		"truncated", resp.Truncated,
		"duration", time.Since(begin),
	)
	return resp, nil
}
