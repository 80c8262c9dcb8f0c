package goquery

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// minDescriptionRunes is the length a description candidate must reach to
// be preferred over earlier, shorter candidates.
const minDescriptionRunes = 4

// CollectLinks builds the link catalog of a document in a single pass over
// its anchors. Entries are keyed by absolute URL without fragment, the first
// occurrence of a key wins, and collection stops at opts.MaxLinks entries.
func CollectLinks(d *pagelens.Document, opts pagelens.CatalogOptions) *pagelens.LinkCatalog {
	opts = opts.Normalize()
	doc := newDocument(d)
	base := baseURL(d)

	catalog := &pagelens.LinkCatalog{Entries: []pagelens.CatalogEntry{}}
	seen := make(map[string]bool)

	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		key := catalogKey(base, s.AttrOr("href", ""))
		if key == "" || seen[key] {
			return true
		}
		seen[key] = true
		catalog.Entries = append(catalog.Entries, pagelens.CatalogEntry{
			URL:         key,
			Description: describe(s, opts),
		})
		return len(catalog.Entries) < opts.MaxLinks
	})

	return catalog
}

// catalogKey resolves href and strips its fragment. It returns "" for
// hrefs that cannot be cataloged.
func catalogKey(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.Scheme != "" && ref.Scheme != "http" && ref.Scheme != "https" {
		return ""
	}
	u := base.ResolveReference(ref)
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return stripFragment(u)
}

// describe picks the description of an anchor from its accessible name and
// visible text, as allowed by opts.
func describe(s *goquery.Selection, opts pagelens.CatalogOptions) string {
	var candidates []string
	if opts.UseTitleAttr {
		candidates = append(candidates,
			CleanText(s.AttrOr("aria-label", "")),
			CleanText(s.AttrOr("title", "")),
		)
	}
	if opts.UseAnchorText {
		candidates = append(candidates, NodeText(s))
	}

	fallback := ""
	for _, c := range candidates {
		if utf8.RuneCountInString(c) >= minDescriptionRunes {
			return c
		}
		if fallback == "" {
			fallback = c
		}
	}
	return fallback
}
