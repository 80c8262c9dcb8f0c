package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/extract"
	"github.com/fwojciec/pagelens/htmltomarkdown"
	lenshttp "github.com/fwojciec/pagelens/http"
	lensslog "github.com/fwojciec/pagelens/slog"
	"github.com/fwojciec/pagelens/tool"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Services for end-to-end testing. When nil, Run wires the HTTP client
	// and extraction service.
	Articles pagelens.ArticleExtractor
	Metadata pagelens.MetadataExtractor
	Links    pagelens.LinkCataloger
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagelens"),
		kong.Description("Fetch web pages and extract structured content"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagelens --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.LogLevel, cli.LogFormat)
	m.wire(cli, logger)

	ctx, cancel := context.WithTimeout(ctx, cli.Timeout)
	defer cancel()

	deps.Ctx = ctx
	deps.Output = cli.Output
	deps.Metadata = m.Metadata
	deps.Tools = &tool.Tools{Articles: m.Articles, Links: m.Links}

	return kongCtx.Run(deps)
}

// wire builds the services not injected by the caller.
func (m *Main) wire(cli *CLI, logger *slog.Logger) {
	if m.Articles != nil && m.Metadata != nil && m.Links != nil {
		return
	}

	client := lenshttp.NewClient(
		lenshttp.WithStrategyWrapper(lensslog.StrategyWrapper(logger)),
	)

	svc := &extract.Service{
		Fetcher:     lensslog.NewLoggingFetcher(client, logger),
		Converter:   htmltomarkdown.NewConverter(),
		Concurrency: cli.Concurrency,
	}
	if cli.EnrichRPS > 0 {
		svc.RateLimiter = extract.NewDomainLimiter(cli.EnrichRPS, 1)
	}

	if m.Articles == nil {
		m.Articles = lensslog.NewLoggingArticleExtractor(svc, logger)
	}
	if m.Metadata == nil {
		m.Metadata = lensslog.NewLoggingMetadataExtractor(svc, logger)
	}
	if m.Links == nil {
		m.Links = lensslog.NewLoggingLinkCataloger(svc, logger)
	}
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
