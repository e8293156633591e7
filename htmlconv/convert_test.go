package htmlconv_test

import (
	"testing"

	"github.com/fwojciec/webfetch/htmlconv"
	"github.com/stretchr/testify/assert"
)

func TestToMarkdown(t *testing.T) {
	t.Parallel()

	t.Run("headings and paragraphs", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<html><body><h1>Title</h1><p>Hello <strong>world</strong>.</p></body></html>")
		assert.Equal(t, "# Title\n\nHello **world**.", md)
	})

	t.Run("mixed document", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<h1>Hello World</h1><p>This is a <strong>test</strong> paragraph.</p><ul><li>Item 1</li><li>Item 2</li></ul>")
		assert.Contains(t, md, "# Hello World")
		assert.Contains(t, md, "**test**")
		assert.Contains(t, md, "- Item 1")
		assert.Contains(t, md, "- Item 2")
	})

	t.Run("heading level maps to hash count", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<h3>Section</h3>")
		assert.Equal(t, "### Section", md)
	})

	t.Run("unordered list", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<ul><li>One</li><li>Two</li></ul>")
		assert.Equal(t, "- One\n- Two", md)
	})

	t.Run("emphasis", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<p><em>soft</em> and <b>loud</b></p>")
		assert.Equal(t, "*soft* and **loud**", md)
	})

	t.Run("horizontal rule", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("above<hr>below")
		assert.Equal(t, "above\n---\nbelow", md)
	})

	t.Run("pre block suppresses inline code markers", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<pre><code>x := 1</code></pre>")
		assert.Equal(t, "```\nx := 1\n```", md)
	})

	t.Run("inline code outside pre", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<p>use <code>nil</code> here</p>")
		assert.Equal(t, "use `nil` here", md)
	})

	t.Run("blockquote prefixes continuation lines", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<blockquote>first\nsecond</blockquote>")
		assert.Equal(t, "> first\n> second", md)
	})

	t.Run("link renders href with text outside brackets", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown(`<a href="https://example.com">here</a>`)
		assert.Equal(t, "[](https://example.com)here", md)
	})

	t.Run("anchor without href renders text only", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<a>plain</a>")
		assert.Equal(t, "plain", md)
	})

	t.Run("script and style content is dropped", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<p>A</p><script>alert(1)</script><style>.x{}</style><p>B</p>")
		assert.Equal(t, "A\n\nB", md)
		assert.NotContains(t, md, "alert")
	})

	t.Run("interleaved skip closers recover by name", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<p>A</p><script>x<style>y</script>z</style><p>B</p>")
		assert.Equal(t, "A\n\nB", md)
	})

	t.Run("self closing skip tag with space does not swallow content", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("before<iframe />after")
		assert.Equal(t, "beforeafter", md)
	})

	t.Run("skip tag pair swallows content", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("before<iframe>inner</iframe>after")
		assert.Equal(t, "beforeafter", md)
	})

	t.Run("unterminated tag consumes the rest of the input", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("text <p unfinished")
		assert.Equal(t, "text", md)
	})

	t.Run("excess whitespace is normalized", func(t *testing.T) {
		t.Parallel()

		md := htmlconv.ToMarkdown("<p>hello   \n   world</p>")
		assert.Equal(t, "hello world", md)
	})
}

func TestToText(t *testing.T) {
	t.Parallel()

	t.Run("structural newlines without markup", func(t *testing.T) {
		t.Parallel()

		text := htmlconv.ToText("<h1>Title</h1><p>Hello <strong>world</strong>.</p>")
		assert.Equal(t, "Title\n\nHello world.", text)
	})

	t.Run("entities decode in text runs", func(t *testing.T) {
		t.Parallel()

		text := htmlconv.ToText("<p>Tom &amp; Jerry &lt;3 &gt; others &quot;quoted&quot;</p>")
		assert.Equal(t, `Tom & Jerry <3 > others "quoted"`, text)
	})

	t.Run("table rows break lines", func(t *testing.T) {
		t.Parallel()

		text := htmlconv.ToText("<table><tr><td>a</td></tr><tr><td>b</td></tr></table>")
		assert.Equal(t, "a\nb", text)
	})

	t.Run("br breaks lines", func(t *testing.T) {
		t.Parallel()

		text := htmlconv.ToText("one<br>two")
		assert.Equal(t, "one\ntwo", text)
	})
}
