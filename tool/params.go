package tool

import (
	"encoding/json"

	"github.com/fwojciec/pagelens"
)

// ArticleParams are the parameters of ExtractArticleContent.
type ArticleParams struct {
	URL string `json:"url"`

	// UseJavaScript is accepted for compatibility. Pages are never
	// rendered; see pagelens.ArticleOptions.UseJSHint.
	UseJavaScript bool `json:"use_javascript"`

	// Markdown additionally renders the content region as Markdown.
	Markdown bool `json:"markdown"`
}

// NewArticleParams returns parameters for url with defaults applied.
func NewArticleParams(url string) ArticleParams {
	return ArticleParams{URL: url, UseJavaScript: true}
}

// UnmarshalJSON decodes parameters, applying defaults for absent fields.
func (p *ArticleParams) UnmarshalJSON(data []byte) error {
	type params ArticleParams
	v := params(NewArticleParams(""))
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = ArticleParams(v)
	return nil
}

// Options converts the parameters to article options.
func (p ArticleParams) Options() pagelens.ArticleOptions {
	return pagelens.ArticleOptions{UseJSHint: p.UseJavaScript, Markdown: p.Markdown}
}

// LinkParams are the parameters of ListLinksWithDescriptions.
type LinkParams struct {
	URL                   string `json:"url"`
	MaxLinks              int    `json:"max_links"`
	IncludeAnchorText     bool   `json:"include_anchor_text"`
	IncludeTitleAttribute bool   `json:"include_title_attribute"`
	FetchLinkedPages      bool   `json:"fetch_linked_pages"`
	FetchLimit            int    `json:"fetch_limit"`
}

// NewLinkParams returns parameters for url with defaults applied.
func NewLinkParams(url string) LinkParams {
	d := pagelens.DefaultCatalogOptions()
	return LinkParams{
		URL:                   url,
		MaxLinks:              d.MaxLinks,
		IncludeAnchorText:     d.UseAnchorText,
		IncludeTitleAttribute: d.UseTitleAttr,
		FetchLinkedPages:      d.Enrich,
		FetchLimit:            d.EnrichLimit,
	}
}

// UnmarshalJSON decodes parameters, applying defaults for absent fields.
func (p *LinkParams) UnmarshalJSON(data []byte) error {
	type params LinkParams
	v := params(NewLinkParams(""))
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*p = LinkParams(v)
	return nil
}

// Options converts the parameters to catalog options clamped into range.
func (p LinkParams) Options() pagelens.CatalogOptions {
	return pagelens.CatalogOptions{
		MaxLinks:      p.MaxLinks,
		UseAnchorText: p.IncludeAnchorText,
		UseTitleAttr:  p.IncludeTitleAttribute,
		Enrich:        p.FetchLinkedPages,
		EnrichLimit:   p.FetchLimit,
	}.Normalize()
}
