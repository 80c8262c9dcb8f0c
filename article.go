package pagelens

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"
)

// ExtractionMethod tags articles produced by the selector-priority extractor.
const ExtractionMethod = "selector_priority_v1"

// Article is the structured content of a page.
type Article struct {
	URL              string    `json:"url"`
	Title            string    `json:"title"`
	Text             string    `json:"text"`
	Excerpt          string    `json:"excerpt"`
	Headings         []Heading `json:"headings"`
	Images           []Image   `json:"images"`
	Links            []Link    `json:"links"`
	Metadata         Metadata  `json:"metadata"`
	WordCount        int       `json:"word_count"`
	ContentLength    int       `json:"content_length"`
	ContentHash      string    `json:"content_hash"`
	ExtractionMethod string    `json:"extraction_method"`
	ContentSelector  string    `json:"content_selector"`
	Markdown         string    `json:"markdown,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

// SetText sets the article text and the statistics derived from it.
// The hash function is supplied by the extractor so the root package
// stays free of hashing dependencies.
func (a *Article) SetText(text string, hash func(string) string) {
	a.Text = text
	a.WordCount = WordCount(text)
	a.ContentLength = utf8.RuneCountInString(text)
	a.ContentHash = ""
	if hash != nil {
		a.ContentHash = hash(text)
	}
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Heading is a heading element found in the content region.
type Heading struct {
	Tag  string `json:"tag"`
	Text string `json:"text"`
}

// Image describes an image. Width and Height are copied verbatim from
// the markup and may be empty.
type Image struct {
	Src    string `json:"src"`
	Alt    string `json:"alt"`
	Title  string `json:"title"`
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
}

// Link is a hyperlink found in the content region.
type Link struct {
	URL   string `json:"url"`
	Text  string `json:"text"`
	Title string `json:"title"`
}

// ArticleOptions configures article extraction.
type ArticleOptions struct {
	// UseJSHint records that the caller would accept script rendering.
	// Pages are never rendered; the hint is passed through for logging.
	UseJSHint bool

	// Markdown renders the content region as Markdown when set.
	Markdown bool
}

// ArticleExtractor fetches a page and extracts its article content.
type ArticleExtractor interface {
	ExtractArticle(ctx context.Context, url string, opts ArticleOptions) (*Article, error)
}

// MetadataExtractor fetches a page and extracts its metadata.
type MetadataExtractor interface {
	ExtractMetadata(ctx context.Context, url string, includeTechnical bool) (*Metadata, error)
}
