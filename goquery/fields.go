package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// Title resolves og:title, then the document title.
func Title(doc *goquery.Document) string {
	return FirstNonEmpty(doc,
		MetaProperty("og:title"),
		Content("title"),
	)
}

// Description resolves og:description, then meta description.
func Description(doc *goquery.Document) string {
	return FirstNonEmpty(doc,
		MetaProperty("og:description"),
		MetaName("description"),
	)
}

// SiteName resolves og:site_name, then the page host.
func SiteName(doc *goquery.Document, page *url.URL) string {
	return FirstNonEmpty(doc,
		MetaProperty("og:site_name"),
		Const(page.Host),
	)
}

// Canonical returns the absolute canonical link.
func Canonical(doc *goquery.Document, page *url.URL) string {
	return absolute(page, Attr(`link[rel~="canonical"][href]`, "href")(doc))
}

// Language returns the lower-cased lang attribute of the html element.
func Language(doc *goquery.Document) string {
	return strings.ToLower(FirstNonEmpty(doc, Attr("html[lang]", "lang")))
}

// Favicon returns the absolute URL of the first declared icon.
func Favicon(doc *goquery.Document, page *url.URL) string {
	for _, sel := range []string{
		`link[rel~="icon"][href]`,
		`link[rel="shortcut icon"][href]`,
		`link[rel~="apple-touch-icon"][href]`,
	} {
		if href := Attr(sel, "href")(doc); href != "" {
			return absolute(page, href)
		}
	}
	return ""
}

// Author resolves the author from meta tags, microdata, then byline classes.
func Author(doc *goquery.Document) string {
	return FirstNonEmpty(doc,
		MetaName("author"),
		MetaProperty("article:author"),
		Content(`[itemprop="author"]`),
		Content(".byline"),
		Content(".author"),
		Content(".post-author"),
	)
}

// Published resolves the publication date as written on the page.
func Published(doc *goquery.Document) string {
	return FirstNonEmpty(doc,
		MetaProperty("article:published_time"),
		MetaName("article:published_time"),
		MetaName("date"),
		MetaName("dc.date"),
		Content(`[itemprop="datePublished"]`, "datetime"),
		Attr("time[datetime]", "datetime"),
	)
}

// Tags collects keywords and tag-link texts, deduplicated in first-seen
// order.
func Tags(doc *goquery.Document) []string {
	tags := []string{}
	seen := make(map[string]bool)
	add := func(t string) {
		t = CollapseText(t)
		if t == "" || seen[t] {
			return
		}
		seen[t] = true
		tags = append(tags, t)
	}

	if kw := MetaName("keywords")(doc); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			add(k)
		}
	}

	for _, container := range []string{".tags", ".post-tags", `[rel="tag"]`} {
		doc.Find(container).Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) == "a" {
				add(NodeText(s))
				return
			}
			s.Find("a").Each(func(_ int, a *goquery.Selection) {
				add(NodeText(a))
			})
		})
	}

	return tags
}

// OpenGraph returns the Open Graph preview fields. The URL falls back to
// the page URL.
func OpenGraph(doc *goquery.Document, page *url.URL, pageURL string) pagelens.OpenGraph {
	return pagelens.OpenGraph{
		Image: absolute(page, FirstNonEmpty(doc, MetaProperty("og:image"))),
		Type:  FirstNonEmpty(doc, MetaProperty("og:type")),
		URL:   FirstNonEmpty(doc, MetaProperty("og:url"), Const(pageURL)),
	}
}

// Twitter returns the Twitter card fields, preferring the name attribute
// over the property attribute.
func Twitter(doc *goquery.Document, page *url.URL) pagelens.Twitter {
	field := func(key string) string {
		return FirstNonEmpty(doc, MetaName(key), MetaProperty(key))
	}
	return pagelens.Twitter{
		Card:        field("twitter:card"),
		Title:       field("twitter:title"),
		Description: field("twitter:description"),
		Image:       absolute(page, field("twitter:image")),
	}
}

// absolute resolves href against page. Blank or unparsable hrefs yield "".
func absolute(page *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if page == nil {
		return ref.String()
	}
	return page.ResolveReference(ref).String()
}
