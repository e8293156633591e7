package main

import (
	"context"
	"io"
	"os"

	"github.com/fwojciec/webfetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Registry *webfetch.Registry
	Version  string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Fetch FetchCmd `cmd:"" help:"Fetch a URL and print the response as JSON"`
	Md    MdCmd    `cmd:"" help:"Fetch a URL and print its content as Markdown"`
	Mcp   McpCmd   `cmd:"" help:"Serve fetch tools over the Model Context Protocol on stdio"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URL        string `arg:"" help:"URL to fetch"`
	Method     string `default:"GET" help:"HTTP method: GET or HEAD"`
	AsMarkdown bool   `help:"Convert HTML content to Markdown"`
	AsText     bool   `help:"Convert HTML content to plain text"`
	UserAgent  string `help:"Override the User-Agent header"`
}

// MdCmd is the "md" subcommand.
type MdCmd struct {
	URL       string `arg:"" help:"URL to fetch"`
	Output    string `default:"md" enum:"md,json" help:"Output format: md or json"`
	UserAgent string `help:"Override the User-Agent header"`
}

// McpCmd is the "mcp" subcommand.
type McpCmd struct {
	UserAgent string `help:"Override the User-Agent header"`
}

// fetchOptions builds registry options from a flag value, falling back to
// the WEBFETCH_USER_AGENT environment variable.
func fetchOptions(userAgent string) *webfetch.Options {
	opts := webfetch.DefaultOptions()
	if userAgent == "" {
		userAgent = os.Getenv("WEBFETCH_USER_AGENT")
	}
	opts.UserAgent = userAgent
	return opts
}
