package webfetch_test

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("missing url", func(t *testing.T) {
		t.Parallel()

		registry := webfetch.NewRegistry()
		_, err := registry.Fetch(context.Background(), &webfetch.Request{}, nil)

		require.Error(t, err)
		assert.Equal(t, webfetch.EINVALID, webfetch.ErrorCode(err))
		assert.Equal(t, "missing required parameter: url", webfetch.ErrorMessage(err))
	})

	t.Run("non-http scheme rejected", func(t *testing.T) {
		t.Parallel()

		registry := webfetch.NewRegistry()
		_, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "file:///etc/passwd"}, nil)

		require.Error(t, err)
		assert.Equal(t, webfetch.EINVALID, webfetch.ErrorCode(err))
	})

	t.Run("dispatches to first matching fetcher", func(t *testing.T) {
		t.Parallel()

		special := &mock.Fetcher{
			NameFn: func() string { return "special" },
			MatchesFn: func(u *url.URL) bool {
				return strings.HasSuffix(u.Host, "special.example.com")
			},
			FetchFn: func(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
				return &webfetch.Response{URL: req.URL, StatusCode: 200, Content: "special"}, nil
			},
		}
		fallback := &mock.Fetcher{
			NameFn:    func() string { return "fallback" },
			MatchesFn: func(u *url.URL) bool { return true },
			FetchFn: func(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
				return &webfetch.Response{URL: req.URL, StatusCode: 200, Content: "fallback"}, nil
			},
		}

		registry := webfetch.NewRegistry()
		registry.Register(special)
		registry.Register(fallback)

		resp, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "https://special.example.com/page"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "special", resp.Content)

		resp, err = registry.Fetch(context.Background(), &webfetch.Request{URL: "https://other.example.com/page"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "fallback", resp.Content)
	})

	t.Run("allow list restricts urls", func(t *testing.T) {
		t.Parallel()

		registry := webfetch.NewRegistry()
		registry.Register(catchAll(t))

		opts := webfetch.DefaultOptions()
		opts.AllowPrefixes = []string{"https://allowed.example.com/"}

		_, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "https://other.example.com/x"}, opts)
		require.Error(t, err)
		assert.Equal(t, webfetch.EBLOCKED, webfetch.ErrorCode(err))

		_, err = registry.Fetch(context.Background(), &webfetch.Request{URL: "https://allowed.example.com/x"}, opts)
		require.NoError(t, err)
	})

	t.Run("block list wins over allow list", func(t *testing.T) {
		t.Parallel()

		registry := webfetch.NewRegistry()
		registry.Register(catchAll(t))

		opts := webfetch.DefaultOptions()
		opts.AllowPrefixes = []string{"https://example.com/"}
		opts.BlockPrefixes = []string{"https://example.com/private/"}

		_, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "https://example.com/private/x"}, opts)
		require.Error(t, err)
		assert.Equal(t, webfetch.EBLOCKED, webfetch.ErrorCode(err))

		_, err = registry.Fetch(context.Background(), &webfetch.Request{URL: "https://example.com/public/x"}, opts)
		require.NoError(t, err)
	})

	t.Run("no matching fetcher", func(t *testing.T) {
		t.Parallel()

		never := &mock.Fetcher{
			NameFn:    func() string { return "never" },
			MatchesFn: func(u *url.URL) bool { return false },
		}
		registry := webfetch.NewRegistry()
		registry.Register(never)

		_, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "https://example.com/"}, nil)
		require.Error(t, err)
		assert.Equal(t, webfetch.EINTERNAL, webfetch.ErrorCode(err))
	})

	t.Run("nil options default to enabled conversions", func(t *testing.T) {
		t.Parallel()

		var got *webfetch.Options
		f := &mock.Fetcher{
			NameFn:    func() string { return "capture" },
			MatchesFn: func(u *url.URL) bool { return true },
			FetchFn: func(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
				got = opts
				return &webfetch.Response{URL: req.URL, StatusCode: 200}, nil
			},
		}
		registry := webfetch.NewRegistry()
		registry.Register(f)

		_, err := registry.Fetch(context.Background(), &webfetch.Request{URL: "https://example.com/"}, nil)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.EnableMarkdown)
		assert.True(t, got.EnableText)
	})
}

// catchAll returns a mock fetcher that matches and succeeds on any URL.
func catchAll(t *testing.T) *mock.Fetcher {
	t.Helper()
	return &mock.Fetcher{
		NameFn:    func() string { return "any" },
		MatchesFn: func(u *url.URL) bool { return true },
		FetchFn: func(ctx context.Context, req *webfetch.Request, opts *webfetch.Options) (*webfetch.Response, error) {
			return &webfetch.Response{URL: req.URL, StatusCode: 200}, nil
		},
	}
}
