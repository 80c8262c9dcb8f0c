package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/mock"
	"github.com/fwojciec/pagelens/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleParams_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults for absent fields", func(t *testing.T) {
		t.Parallel()

		var p tool.ArticleParams
		require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com"}`), &p))

		assert.Equal(t, "https://example.com", p.URL)
		assert.True(t, p.UseJavaScript)
		assert.False(t, p.Markdown)
	})

	t.Run("honors explicit false", func(t *testing.T) {
		t.Parallel()

		var p tool.ArticleParams
		require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com","use_javascript":false}`), &p))

		assert.False(t, p.UseJavaScript)
	})
}

func TestLinkParams(t *testing.T) {
	t.Parallel()

	t.Run("applies defaults for absent fields", func(t *testing.T) {
		t.Parallel()

		var p tool.LinkParams
		require.NoError(t, json.Unmarshal([]byte(`{"url":"https://example.com"}`), &p))

		assert.Equal(t, tool.NewLinkParams("https://example.com"), p)
		assert.Equal(t, 50, p.MaxLinks)
		assert.True(t, p.IncludeAnchorText)
		assert.True(t, p.IncludeTitleAttribute)
		assert.False(t, p.FetchLinkedPages)
		assert.Equal(t, 10, p.FetchLimit)
	})

	t.Run("clamps limits into range", func(t *testing.T) {
		t.Parallel()

		var p tool.LinkParams
		require.NoError(t, json.Unmarshal([]byte(`{"url":"u","max_links":500,"fetch_limit":0}`), &p))

		opts := p.Options()
		assert.Equal(t, pagelens.MaxMaxLinks, opts.MaxLinks)
		assert.Equal(t, pagelens.MinEnrichLimit, opts.EnrichLimit)
	})

	t.Run("maps flags to catalog options", func(t *testing.T) {
		t.Parallel()

		p := tool.NewLinkParams("u")
		p.IncludeAnchorText = false
		p.FetchLinkedPages = true

		opts := p.Options()
		assert.False(t, opts.UseAnchorText)
		assert.True(t, opts.UseTitleAttr)
		assert.True(t, opts.Enrich)
	})
}

func TestTools_ExtractArticleContent(t *testing.T) {
	t.Parallel()

	t.Run("returns the article", func(t *testing.T) {
		t.Parallel()

		var gotOpts pagelens.ArticleOptions
		tools := &tool.Tools{Articles: &mock.ArticleExtractor{
			ExtractArticleFn: func(_ context.Context, url string, opts pagelens.ArticleOptions) (*pagelens.Article, error) {
				gotOpts = opts
				return &pagelens.Article{URL: url, Title: "Title"}, nil
			},
		}}

		got := tools.ExtractArticleContent(context.Background(), tool.NewArticleParams("https://example.com"))

		a, ok := got.(*pagelens.Article)
		require.True(t, ok)
		assert.Equal(t, "Title", a.Title)
		assert.True(t, gotOpts.UseJSHint)
	})

	t.Run("returns error payload with url", func(t *testing.T) {
		t.Parallel()

		tools := &tool.Tools{Articles: &mock.ArticleExtractor{
			ExtractArticleFn: func(context.Context, string, pagelens.ArticleOptions) (*pagelens.Article, error) {
				return nil, &pagelens.FetchError{URL: "https://example.com", Failures: []pagelens.StrategyFailure{
					{Strategy: "primary", Err: errors.New("HTTP 403 for https://example.com")},
					{Strategy: "simplified", Err: errors.New("HTTP 403 for https://example.com")},
					{Strategy: "raw", Err: errors.New("timeout")},
				}}
			},
		}}

		got := tools.ExtractArticleContent(context.Background(), tool.NewArticleParams("https://example.com"))

		data, err := json.Marshal(got)
		require.NoError(t, err)

		var payload map[string]string
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.Equal(t, "https://example.com", payload["url"])
		assert.Contains(t, payload["error"], "Error extracting article: all fetch strategies failed")
		assert.Contains(t, payload["error"], "primary: HTTP 403")
		assert.Contains(t, payload["error"], "simplified: HTTP 403")
		assert.Contains(t, payload["error"], "raw: timeout")
	})

	t.Run("reports invalid input messages", func(t *testing.T) {
		t.Parallel()

		tools := &tool.Tools{Articles: &mock.ArticleExtractor{
			ExtractArticleFn: func(context.Context, string, pagelens.ArticleOptions) (*pagelens.Article, error) {
				return nil, pagelens.Errorf(pagelens.EINVALID, "invalid URL")
			},
		}}

		got := tools.ExtractArticleContent(context.Background(), tool.NewArticleParams("ftp://x"))

		payload, ok := got.(*tool.ErrorPayload)
		require.True(t, ok)
		assert.Equal(t, "Error extracting article: invalid URL", payload.Error)
	})
}

func TestTools_ListLinksWithDescriptions(t *testing.T) {
	t.Parallel()

	t.Run("returns ordered mapping", func(t *testing.T) {
		t.Parallel()

		tools := &tool.Tools{Links: &mock.LinkCataloger{
			BuildCatalogFn: func(context.Context, string, pagelens.CatalogOptions) (*pagelens.LinkCatalog, error) {
				return &pagelens.LinkCatalog{Entries: []pagelens.CatalogEntry{
					{URL: "https://example.com/z", Description: "Zed"},
					{URL: "https://example.com/a", Description: "Ay"},
				}}, nil
			},
		}}

		got := tools.ListLinksWithDescriptions(context.Background(), tool.NewLinkParams("https://example.com"))

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.JSONEq(t, `{"https://example.com/z":"Zed","https://example.com/a":"Ay"}`, string(data))
		assert.Equal(t, `{"https://example.com/z":"Zed","https://example.com/a":"Ay"}`, string(data))
	})

	t.Run("passes clamped options", func(t *testing.T) {
		t.Parallel()

		var got pagelens.CatalogOptions
		tools := &tool.Tools{Links: &mock.LinkCataloger{
			BuildCatalogFn: func(_ context.Context, _ string, opts pagelens.CatalogOptions) (*pagelens.LinkCatalog, error) {
				got = opts
				return &pagelens.LinkCatalog{}, nil
			},
		}}
		p := tool.NewLinkParams("https://example.com")
		p.MaxLinks = 1000

		tools.ListLinksWithDescriptions(context.Background(), p)

		assert.Equal(t, pagelens.MaxMaxLinks, got.MaxLinks)
	})

	t.Run("returns error payload without url", func(t *testing.T) {
		t.Parallel()

		tools := &tool.Tools{Links: &mock.LinkCataloger{
			BuildCatalogFn: func(context.Context, string, pagelens.CatalogOptions) (*pagelens.LinkCatalog, error) {
				return nil, errors.New("boom")
			},
		}}

		got := tools.ListLinksWithDescriptions(context.Background(), tool.NewLinkParams("https://example.com"))

		data, err := json.Marshal(got)
		require.NoError(t, err)
		assert.Equal(t, `{"error":"Failed to extract links: boom"}`, string(data))
	})
}
