package http_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	webhttp "github.com/fwojciec/webfetch/http"
	"github.com/stretchr/testify/assert"
)

func TestReadBounded(t *testing.T) {
	t.Parallel()

	t.Run("reads full stream before deadline", func(t *testing.T) {
		t.Parallel()

		body, truncated := webhttp.ReadBounded(strings.NewReader("complete body"), time.Second)
		assert.Equal(t, "complete body", string(body))
		assert.False(t, truncated)
	})

	t.Run("empty stream", func(t *testing.T) {
		t.Parallel()

		body, truncated := webhttp.ReadBounded(bytes.NewReader(nil), time.Second)
		assert.Empty(t, body)
		assert.False(t, truncated)
	})

	t.Run("stalled stream returns partial bytes as truncated", func(t *testing.T) {
		t.Parallel()

		pr, pw := io.Pipe()
		go func() {
			_, _ = pw.Write([]byte("early"))
			// Never closes: the reader must give up on its own.
		}()

		body, truncated := webhttp.ReadBounded(pr, 100*time.Millisecond)
		assert.Equal(t, "early", string(body))
		assert.True(t, truncated)
		_ = pw.Close()
	})

	t.Run("mid-stream error after bytes counts as truncated", func(t *testing.T) {
		t.Parallel()

		r := io.MultiReader(strings.NewReader("partial"), iotest.ErrReader(errors.New("reset")))
		body, truncated := webhttp.ReadBounded(r, time.Second)
		assert.Equal(t, "partial", string(body))
		assert.True(t, truncated)
	})

	t.Run("immediate error yields empty untruncated body", func(t *testing.T) {
		t.Parallel()

		body, truncated := webhttp.ReadBounded(iotest.ErrReader(errors.New("reset")), time.Second)
		assert.Empty(t, body)
		assert.False(t, truncated)
	})
}
