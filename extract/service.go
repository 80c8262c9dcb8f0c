// Package extract orchestrates retrieval and extraction: it fetches pages
// through a pagelens.Fetcher and runs the goquery extractors over them.
package extract

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
)

// Ensure Service implements the extraction interfaces at compile time.
var (
	_ pagelens.ArticleExtractor  = (*Service)(nil)
	_ pagelens.MetadataExtractor = (*Service)(nil)
	_ pagelens.LinkCataloger     = (*Service)(nil)
)

// Service extracts articles, metadata and link catalogs from URLs.
type Service struct {
	Fetcher pagelens.Fetcher

	// Converter renders Markdown when ArticleOptions.Markdown is set.
	Converter pagelens.Converter

	// RateLimiter, when set, paces enrichment fetches per host.
	RateLimiter pagelens.DomainLimiter

	// Concurrency bounds enrichment fetches. Zero means DefaultConcurrency.
	Concurrency int

	// Now returns the extraction timestamp. Defaults to time.Now.
	Now func() time.Time
}

// ExtractArticle fetches the URL and extracts its main content.
func (s *Service) ExtractArticle(ctx context.Context, url string, opts pagelens.ArticleOptions) (*pagelens.Article, error) {
	doc, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	a := goquery.ExtractArticle(doc)
	a.Timestamp = s.now()

	if opts.Markdown {
		if s.Converter == nil {
			return nil, pagelens.Errorf(pagelens.EINTERNAL, "markdown requested but no converter configured")
		}
		html, err := goquery.ContentHTML(doc)
		if err != nil {
			return nil, fmt.Errorf("rendering content region: %w", err)
		}
		md, err := s.Converter.Convert(html, baseURL(doc))
		if err != nil {
			return nil, fmt.Errorf("converting to markdown: %w", err)
		}
		a.Markdown = md
	}

	return a, nil
}

// ExtractMetadata fetches the URL and extracts its metadata.
func (s *Service) ExtractMetadata(ctx context.Context, url string, includeTechnical bool) (*pagelens.Metadata, error) {
	doc, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	return goquery.ExtractMetadata(doc, includeTechnical), nil
}

// BuildCatalog fetches the URL and builds its link catalog, enriching
// short descriptions from the linked pages when opts.Enrich is set.
func (s *Service) BuildCatalog(ctx context.Context, url string, opts pagelens.CatalogOptions) (*pagelens.LinkCatalog, error) {
	opts = opts.Normalize()

	doc, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	catalog := goquery.CollectLinks(doc, opts)
	if opts.Enrich {
		s.enrich(ctx, catalog, opts.EnrichLimit)
	}

	return catalog, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func baseURL(doc *pagelens.Document) string {
	if doc.FinalURL != "" {
		return doc.FinalURL
	}
	return doc.URL
}
