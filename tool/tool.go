// Package tool is the external boundary of pagelens. Its operations accept
// structured parameters and always return a JSON-serializable value: either
// the result or an ErrorPayload describing the failure.
package tool

import (
	"context"
	"fmt"

	"github.com/fwojciec/pagelens"
)

// ErrorPayload is returned in place of a result when an operation fails.
type ErrorPayload struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error"`
}

// Tools exposes the extraction operations.
type Tools struct {
	Articles pagelens.ArticleExtractor
	Links    pagelens.LinkCataloger
}

// ExtractArticleContent extracts the main content of the page. It returns
// a *pagelens.Article or an *ErrorPayload carrying the URL.
func (t *Tools) ExtractArticleContent(ctx context.Context, p ArticleParams) any {
	a, err := t.Articles.ExtractArticle(ctx, p.URL, p.Options())
	if err != nil {
		return &ErrorPayload{
			URL:   p.URL,
			Error: fmt.Sprintf("Error extracting article: %s", pagelens.ErrorMessage(err)),
		}
	}
	return a
}

// ListLinksWithDescriptions maps each link on the page to a description.
// It returns a *pagelens.LinkCatalog, which encodes as an ordered JSON
// object, or an *ErrorPayload.
func (t *Tools) ListLinksWithDescriptions(ctx context.Context, p LinkParams) any {
	catalog, err := t.Links.BuildCatalog(ctx, p.URL, p.Options())
	if err != nil {
		return &ErrorPayload{
			Error: fmt.Sprintf("Failed to extract links: %s", pagelens.ErrorMessage(err)),
		}
	}
	return catalog
}
