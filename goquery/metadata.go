package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
	"golang.org/x/net/html"
)

// ExtractMetadata assembles the metadata of a fetched document. The
// technical record is only attached when includeTechnical is set.
func ExtractMetadata(d *pagelens.Document, includeTechnical bool) *pagelens.Metadata {
	doc := newDocument(d)
	return metadata(doc, d, baseURL(d), includeTechnical)
}

func metadata(doc *goquery.Document, d *pagelens.Document, base *url.URL, includeTechnical bool) *pagelens.Metadata {
	md := &pagelens.Metadata{
		Title:       Title(doc),
		Description: Description(doc),
		SiteName:    SiteName(doc, base),
		Canonical:   Canonical(doc, base),
		Language:    Language(doc),
		Favicon:     Favicon(doc, base),
		Author:      Author(doc),
		Published:   Published(doc),
		OpenGraph:   OpenGraph(doc, base, d.URL),
		Twitter:     Twitter(doc, base),
		Robots:      FirstNonEmpty(doc, MetaName("robots")),
		Viewport:    FirstNonEmpty(doc, MetaName("viewport")),
		Generator:   FirstNonEmpty(doc, MetaName("generator")),
		Tags:        Tags(doc),
	}

	if includeTechnical {
		md.Technical = &pagelens.Technical{
			ImagesCount: doc.Find("img").Length(),
			LinksCount:  doc.Find("a").Length(),
			Charset:     d.Charset,
			ContentType: d.ContentType,
		}
	}

	return md
}

// newDocument wraps the parsed tree of d. A missing tree is treated as an
// empty page.
func newDocument(d *pagelens.Document) *goquery.Document {
	root := d.Root
	if root == nil {
		root, _ = html.Parse(strings.NewReader(""))
	}
	return goquery.NewDocumentFromNode(root)
}

// baseURL returns the URL relative references resolve against: the final
// URL after redirects when known, else the requested URL.
func baseURL(d *pagelens.Document) *url.URL {
	for _, raw := range []string{d.FinalURL, d.URL} {
		if raw == "" {
			continue
		}
		if u, err := url.Parse(raw); err == nil {
			return u
		}
	}
	return &url.URL{}
}
