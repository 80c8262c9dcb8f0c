package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/fs"
	"github.com/fwojciec/pagelens/tool"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Output   string
	Tools    *tool.Tools
	Metadata pagelens.MetadataExtractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout     time.Duration `short:"t" default:"2m" env:"PAGELENS_TIMEOUT" help:"Overall timeout per command"`
	LogLevel    string        `default:"warn" enum:"debug,info,warn,error" env:"PAGELENS_LOG_LEVEL" help:"Log level (${enum})"`
	LogFormat   string        `default:"text" enum:"text,json" env:"PAGELENS_LOG_FORMAT" help:"Log format (${enum})"`
	Concurrency int           `short:"c" default:"4" env:"PAGELENS_CONCURRENCY" help:"Concurrent enrichment fetches (1-8)"`
	EnrichRPS   float64       `name:"enrich-rps" default:"0" env:"PAGELENS_ENRICH_RPS" help:"Per-host request rate for enrichment fetches; 0 disables"`
	Output      string        `short:"o" type:"path" help:"Write the JSON result to a file instead of stdout"`

	Article ArticleCmd `cmd:"" help:"Extract the main article content of a page"`
	Links   LinksCmd   `cmd:"" help:"Map the links on a page to descriptions"`
	Meta    MetaCmd    `cmd:"" help:"Extract page metadata"`
}

// ArticleCmd is the "article" subcommand.
type ArticleCmd struct {
	URL           string `arg:"" help:"Page URL"`
	Markdown      bool   `short:"m" help:"Include a Markdown rendering of the content"`
	UseJavaScript bool   `name:"js" default:"true" negatable:"" help:"Accept script rendering (pages are never rendered)"`
}

// LinksCmd is the "links" subcommand.
type LinksCmd struct {
	URL        string `arg:"" help:"Page URL"`
	MaxLinks   int    `short:"n" default:"50" help:"Maximum number of links (1-200)"`
	AnchorText bool   `default:"true" negatable:"" help:"Use anchor text as description"`
	TitleAttr  bool   `default:"true" negatable:"" help:"Use aria-label and title attributes as description"`
	Fetch      bool   `short:"f" help:"Fetch linked pages to improve short descriptions"`
	FetchLimit int    `default:"10" help:"Maximum number of linked pages to fetch (1-50)"`
}

// MetaCmd is the "meta" subcommand.
type MetaCmd struct {
	URL       string `arg:"" help:"Page URL"`
	Technical bool   `default:"true" negatable:"" help:"Include technical statistics"`
}

// Run executes the article command.
func (c *ArticleCmd) Run(deps *Dependencies) error {
	result := deps.Tools.ExtractArticleContent(deps.Ctx, tool.ArticleParams{
		URL:           c.URL,
		UseJavaScript: c.UseJavaScript,
		Markdown:      c.Markdown,
	})
	return deps.emit(result)
}

// Run executes the links command.
func (c *LinksCmd) Run(deps *Dependencies) error {
	result := deps.Tools.ListLinksWithDescriptions(deps.Ctx, tool.LinkParams{
		URL:                   c.URL,
		MaxLinks:              c.MaxLinks,
		IncludeAnchorText:     c.AnchorText,
		IncludeTitleAttribute: c.TitleAttr,
		FetchLinkedPages:      c.Fetch,
		FetchLimit:            c.FetchLimit,
	})
	return deps.emit(result)
}

// Run executes the meta command.
func (c *MetaCmd) Run(deps *Dependencies) error {
	md, err := deps.Metadata.ExtractMetadata(deps.Ctx, c.URL, c.Technical)
	if err != nil {
		return deps.emit(&tool.ErrorPayload{URL: c.URL, Error: pagelens.ErrorMessage(err)})
	}
	return deps.emit(md)
}

// emit writes the result to the output file or stdout. Error payloads are
// written like results and then reported as a failure.
func (d *Dependencies) emit(v any) error {
	var err error
	if d.Output != "" {
		err = fs.WriteJSON(d.Output, v)
	} else {
		err = fs.EncodeJSON(d.Stdout, v)
	}
	if err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	if p, ok := v.(*tool.ErrorPayload); ok {
		return errors.New(p.Error)
	}
	if d.Output != "" {
		fmt.Fprintf(d.Stderr, "Wrote %s\n", d.Output)
	}
	return nil
}
