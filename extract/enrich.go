package extract

import (
	"context"
	"unicode/utf8"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/goquery"
	"golang.org/x/sync/errgroup"
)

// Enrichment worker bounds.
const (
	DefaultConcurrency = 4
	MaxConcurrency     = 8
)

// RichDescriptionRunes is the length at which a description is considered
// informative enough to skip enrichment.
const RichDescriptionRunes = 20

// enrich replaces short descriptions of the leading limit entries with the
// description or title of the linked page. Fetch failures leave the entry
// unchanged. Results are gathered per index before any entry is modified.
func (s *Service) enrich(ctx context.Context, catalog *pagelens.LinkCatalog, limit int) {
	n := min(limit, catalog.Len())
	outcomes := make([]string, n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, entry := range catalog.Entries[:n] {
		if utf8.RuneCountInString(entry.Description) >= RichDescriptionRunes {
			continue
		}
		g.Go(func() error {
			outcomes[i] = s.describeTarget(gctx, entry.URL)
			return nil
		})
	}
	_ = g.Wait()

	for i, desc := range outcomes {
		if desc != "" {
			catalog.Entries[i].Description = desc
		}
	}
}

// describeTarget fetches target and returns its description, else its
// title. It returns "" on any failure.
func (s *Service) describeTarget(ctx context.Context, target string) string {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, target); err != nil {
			return ""
		}
	}

	doc, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		return ""
	}

	md := goquery.ExtractMetadata(doc, false)
	if md.Description != "" {
		return md.Description
	}
	return md.Title
}

func (s *Service) concurrency() int {
	if s.Concurrency <= 0 {
		return DefaultConcurrency
	}
	return min(s.Concurrency, MaxConcurrency)
}
