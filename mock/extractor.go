package mock

import (
	"context"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of pagelens.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(ctx context.Context, url string, opts pagelens.ArticleOptions) (*pagelens.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(ctx context.Context, url string, opts pagelens.ArticleOptions) (*pagelens.Article, error) {
	return e.ExtractArticleFn(ctx, url, opts)
}

var _ pagelens.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagelens.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(ctx context.Context, url string, includeTechnical bool) (*pagelens.Metadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(ctx context.Context, url string, includeTechnical bool) (*pagelens.Metadata, error) {
	return e.ExtractMetadataFn(ctx, url, includeTechnical)
}

var _ pagelens.LinkCataloger = (*LinkCataloger)(nil)

// LinkCataloger is a mock implementation of pagelens.LinkCataloger.
type LinkCataloger struct {
	BuildCatalogFn func(ctx context.Context, url string, opts pagelens.CatalogOptions) (*pagelens.LinkCatalog, error)
}

func (c *LinkCataloger) BuildCatalog(ctx context.Context, url string, opts pagelens.CatalogOptions) (*pagelens.LinkCatalog, error) {
	return c.BuildCatalogFn(ctx, url, opts)
}
