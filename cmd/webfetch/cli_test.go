package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchOptions(t *testing.T) {
	t.Run("flag value wins", func(t *testing.T) {
		t.Setenv("WEBFETCH_USER_AGENT", "env-agent/1.0")

		opts := fetchOptions("flag-agent/1.0")
		assert.Equal(t, "flag-agent/1.0", opts.UserAgent)
	})

	t.Run("environment fallback", func(t *testing.T) {
		t.Setenv("WEBFETCH_USER_AGENT", "env-agent/1.0")

		opts := fetchOptions("")
		assert.Equal(t, "env-agent/1.0", opts.UserAgent)
	})

	t.Run("empty when neither set", func(t *testing.T) {
		t.Setenv("WEBFETCH_USER_AGENT", "")

		opts := fetchOptions("")
		assert.Equal(t, "", opts.UserAgent)
		assert.True(t, opts.EnableMarkdown)
		assert.True(t, opts.EnableText)
	})
}
