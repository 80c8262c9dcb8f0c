package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/google/uuid"
)

// Ensure LoggingArticleExtractor implements pagelens.ArticleExtractor.
var _ pagelens.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with logging. Each call
// is tagged with a call_id.
type LoggingArticleExtractor struct {
	next   pagelens.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next pagelens.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingArticleExtractor) ExtractArticle(ctx context.Context, url string, opts pagelens.ArticleOptions) (a *pagelens.Article, err error) {
	logger := e.logger.With("call_id", uuid.NewString())
	if opts.UseJSHint {
		logger.Debug("script rendering requested but not supported; using static HTML", "url", url)
	}
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if a != nil {
			attrs = append(attrs,
				"words", a.WordCount,
				"links", len(a.Links),
				"images", len(a.Images),
				"selector", a.ContentSelector,
			)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		logger.Info("extract article", attrs...)
	}(time.Now())
	return e.next.ExtractArticle(ctx, url, opts)
}

// Ensure LoggingMetadataExtractor implements pagelens.MetadataExtractor.
var _ pagelens.MetadataExtractor = (*LoggingMetadataExtractor)(nil)

// LoggingMetadataExtractor wraps a MetadataExtractor with logging.
type LoggingMetadataExtractor struct {
	next   pagelens.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingMetadataExtractor creates a new LoggingMetadataExtractor.
func NewLoggingMetadataExtractor(next pagelens.MetadataExtractor, logger *slog.Logger) *LoggingMetadataExtractor {
	return &LoggingMetadataExtractor{next: next, logger: logger}
}

// ExtractMetadata delegates to the wrapped extractor and logs the operation.
func (e *LoggingMetadataExtractor) ExtractMetadata(ctx context.Context, url string, includeTechnical bool) (md *pagelens.Metadata, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract metadata",
			"call_id", uuid.NewString(),
			"url", url,
			"technical", includeTechnical,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMetadata(ctx, url, includeTechnical)
}

// Ensure LoggingLinkCataloger implements pagelens.LinkCataloger.
var _ pagelens.LinkCataloger = (*LoggingLinkCataloger)(nil)

// LoggingLinkCataloger wraps a LinkCataloger with logging.
type LoggingLinkCataloger struct {
	next   pagelens.LinkCataloger
	logger *slog.Logger
}

// NewLoggingLinkCataloger creates a new LoggingLinkCataloger.
func NewLoggingLinkCataloger(next pagelens.LinkCataloger, logger *slog.Logger) *LoggingLinkCataloger {
	return &LoggingLinkCataloger{next: next, logger: logger}
}

// BuildCatalog delegates to the wrapped cataloger and logs the operation.
func (c *LoggingLinkCataloger) BuildCatalog(ctx context.Context, url string, opts pagelens.CatalogOptions) (catalog *pagelens.LinkCatalog, err error) {
	defer func(begin time.Time) {
		count := 0
		if catalog != nil {
			count = catalog.Len()
		}
		c.logger.Info("build catalog",
			"call_id", uuid.NewString(),
			"url", url,
			"count", count,
			"enrich", opts.Enrich,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.BuildCatalog(ctx, url, opts)
}
