// Package mcp exposes the fetch registry as a Model Context Protocol
// server over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/webfetch"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FetchInput is the argument schema for the webfetch tool.
type FetchInput struct {
	URL        string `json:"url" jsonschema:"URL to fetch (must start with http:// or https://)"`
	Method     string `json:"method,omitempty" jsonschema:"HTTP method: GET (default) or HEAD"`
	AsMarkdown bool   `json:"as_markdown,omitempty" jsonschema:"Convert HTML content to Markdown"`
	AsText     bool   `json:"as_text,omitempty" jsonschema:"Convert HTML content to plain text"`
}

// FetchMdInput is the argument schema for the webfetch_md tool.
type FetchMdInput struct {
	URL string `json:"url" jsonschema:"URL to fetch and convert to Markdown"`
}

// Server serves fetch tools over the Model Context Protocol.
type Server struct {
	registry *webfetch.Registry
	options  *webfetch.Options
	server   *mcp.Server
}

// NewServer creates an MCP server backed by the given registry.
func NewServer(registry *webfetch.Registry, options *webfetch.Options, version string) *Server {
	s := &Server{
		registry: registry,
		options:  options,
		server: mcp.NewServer(&mcp.Implementation{
			Name:    "webfetch",
			Version: version,
		}, nil),
	}

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "webfetch",
		Description: "Fetch a URL and return its content as JSON. HTML can be " +
			"converted to Markdown or plain text; GitHub repository URLs return " +
			"a Markdown summary of the repository.",
	}, s.handleFetch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name: "webfetch_md",
		Description: "Fetch a URL, convert HTML to Markdown, and return the " +
			"content with frontmatter metadata.",
	}, s.handleFetchMd)

	return s
}

// Run serves MCP requests over stdio until ctx is canceled.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

func (s *Server) handleFetch(ctx context.Context, req *mcp.CallToolRequest, input FetchInput) (*mcp.CallToolResult, any, error) {
	method, err := webfetch.ParseMethod(input.Method)
	if err != nil {
		return errorResult(err), nil, nil
	}

	resp, err := s.registry.Fetch(ctx, &webfetch.Request{
		URL:        input.URL,
		Method:     method,
		AsMarkdown: input.AsMarkdown,
		AsText:     input.AsText,
	}, s.options)
	if err != nil {
		return errorResult(err), nil, nil
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal response: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(out)}},
	}, nil, nil
}

func (s *Server) handleFetchMd(ctx context.Context, req *mcp.CallToolRequest, input FetchMdInput) (*mcp.CallToolResult, any, error) {
	resp, err := s.registry.Fetch(ctx, &webfetch.Request{
		URL:        input.URL,
		AsMarkdown: true,
	}, s.options)
	if err != nil {
		return errorResult(err), nil, nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: webfetch.Frontmatter(resp)}},
	}, nil, nil
}

// errorResult converts an application error into a tool error result so
// the model sees the message instead of a protocol failure.
func errorResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: webfetch.ErrorMessage(err)}},
		IsError: true,
	}
}
