package goquery

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagelens"
)

// Article extraction limits.
const (
	MaxChunks     = 400
	ExcerptChunks = 3
	MinChunkRunes = 4
	MaxImages     = 50
	MaxLinks      = 100
)

const chunkSelector = "h1, h2, h3, h4, h5, h6, p, li"

var headingTags = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// ContentHash returns the hex xxhash64 digest of text.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

// ExtractArticle builds an article from a fetched document. Timestamp and
// Markdown are left for the caller to fill in.
func ExtractArticle(d *pagelens.Document) *pagelens.Article {
	doc := newDocument(d)
	base := baseURL(d)
	region, label := LocateContent(doc)

	md := metadata(doc, d, base, false)

	a := &pagelens.Article{
		URL:              d.URL,
		Title:            md.Title,
		Headings:         Headings(region),
		Images:           Images(region, base),
		Links:            ContentLinks(region, base),
		Metadata:         *md,
		ExtractionMethod: pagelens.ExtractionMethod,
		ContentSelector:  label,
	}
	if len(a.Images) == 0 {
		a.Images = Images(doc.Selection, base)
	}

	chunks := TextChunks(region)
	a.Excerpt = strings.Join(chunks[:min(ExcerptChunks, len(chunks))], " ")
	a.SetText(strings.Join(chunks[:min(MaxChunks, len(chunks))], "\n\n"), ContentHash)

	return a
}

// TextChunks returns the cleaned text of headings, paragraphs and list
// items in the region, in document order. Chunks shorter than
// MinChunkRunes are dropped.
func TextChunks(region *goquery.Selection) []string {
	var chunks []string
	region.Find(chunkSelector).Each(func(_ int, s *goquery.Selection) {
		if txt := NodeText(s); utf8.RuneCountInString(txt) >= MinChunkRunes {
			chunks = append(chunks, txt)
		}
	})
	return chunks
}

// Headings returns the headings of the region grouped by level, h1 first.
// Within a level headings keep document order.
func Headings(region *goquery.Selection) []pagelens.Heading {
	headings := []pagelens.Heading{}
	for _, tag := range headingTags {
		region.Find(tag).Each(func(_ int, s *goquery.Selection) {
			if txt := NodeText(s); txt != "" {
				headings = append(headings, pagelens.Heading{Tag: tag, Text: txt})
			}
		})
	}
	return headings
}

// Images returns up to MaxImages images with a source in scope.
func Images(scope *goquery.Selection, base *url.URL) []pagelens.Image {
	images := []pagelens.Image{}
	scope.Find("img[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src := absolute(base, s.AttrOr("src", ""))
		if src == "" {
			return true
		}
		images = append(images, pagelens.Image{
			Src:    src,
			Alt:    CleanText(s.AttrOr("alt", "")),
			Title:  CleanText(s.AttrOr("title", "")),
			Width:  s.AttrOr("width", ""),
			Height: s.AttrOr("height", ""),
		})
		return len(images) < MaxImages
	})
	return images
}

// ContentLinks returns up to MaxLinks text links in region. Fragment-only
// hrefs, javascript: hrefs and anchors back into the page itself are
// skipped.
func ContentLinks(region *goquery.Selection, base *url.URL) []pagelens.Link {
	links := []pagelens.Link{}
	page := stripFragment(base)
	region.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href := strings.TrimSpace(s.AttrOr("href", ""))
		if href == "" || strings.HasPrefix(href, "#") || isJavaScript(href) {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		u := base.ResolveReference(ref)
		if u.Fragment != "" && stripFragment(u) == page {
			return true
		}
		text := NodeText(s)
		if text == "" {
			return true
		}
		links = append(links, pagelens.Link{
			URL:   u.String(),
			Text:  text,
			Title: CleanText(s.AttrOr("title", "")),
		})
		return len(links) < MaxLinks
	})
	return links
}

// stripFragment returns u without its fragment, as a string.
func stripFragment(u *url.URL) string {
	c := *u
	c.Fragment = ""
	c.RawFragment = ""
	return c.String()
}

func isJavaScript(href string) bool {
	return strings.HasPrefix(strings.ToLower(href), "javascript:")
}
