package webfetch

import (
	"strconv"
	"strings"
)

// Frontmatter renders a response as key-value metadata lines between two
// "---" delimiters, followed by the content body if present, else the
// error text if present. Absent optional fields are omitted; truncated
// appears only when true.
func Frontmatter(resp *Response) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("url: " + resp.URL + "\n")
	b.WriteString("status_code: " + strconv.Itoa(resp.StatusCode) + "\n")
	if resp.ContentType != "" {
		b.WriteString("source_content_type: " + resp.ContentType + "\n")
	}
	if resp.Size != nil {
		b.WriteString("source_size: " + strconv.FormatInt(*resp.Size, 10) + "\n")
	}
	if resp.LastModified != "" {
		b.WriteString("last_modified: " + resp.LastModified + "\n")
	}
	if resp.Filename != "" {
		b.WriteString("filename: " + resp.Filename + "\n")
	}
	if resp.Truncated {
		b.WriteString("truncated: true\n")
	}
	b.WriteString("---")
	if resp.Content != "" {
		b.WriteString("\n" + resp.Content)
	} else if resp.Error != "" {
		b.WriteString("\n" + resp.Error)
	}
	return b.String()
}
