package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/webfetch"
	"github.com/fwojciec/webfetch/github"
	webhttp "github.com/fwojciec/webfetch/http"
	webslog "github.com/fwojciec/webfetch/slog"
)

// Version is reported by the MCP server and the --version flag.
const Version = "1.0.0"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", webfetch.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Registry used to dispatch fetches. Overridable for end-to-end tests.
	Registry *webfetch.Registry
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:     ctx,
		Stdout:  stdout,
		Stderr:  stderr,
		Version: Version,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("webfetch"),
		kong.Description("Fetch web content and convert it to Markdown or plain text."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'webfetch --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if m.Registry == nil {
		m.Registry = buildRegistry(newLogger(stderr, cli.Verbose))
	}
	deps.Registry = m.Registry

	return kongCtx.Run(deps)
}

// buildRegistry wires the fetchers in dispatch order: specialized
// fetchers first, the generic HTTP fetcher last.
func buildRegistry(logger *slog.Logger) *webfetch.Registry {
	registry := webfetch.NewRegistry()
	registry.Register(webslog.NewLoggingFetcher(github.NewRepoFetcher(), logger))
	registry.Register(webslog.NewLoggingFetcher(webhttp.NewFetcher(), logger))
	return registry
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelError
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
