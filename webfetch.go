// Package webfetch fetches web content and adapts it for LLM consumption:
// raw text, a simplified Markdown rendering of HTML, or a plain-text
// rendering of HTML, with bounded latency and memory even against slow or
// hostile servers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency or concern (e.g., http/, github/, mcp/).
package webfetch

// DefaultUserAgent identifies requests when no custom agent is configured.
const DefaultUserAgent = "webfetch/1.0"
