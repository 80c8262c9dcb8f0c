package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
)

// ContentSelectors are tried in order to locate the main content region.
var ContentSelectors = []string{
	"article",
	`[role="main"]`,
	"main",
	".content",
	"#content",
	".post-content",
	".entry-content",
	".article-content",
	".story-body",
	".article-body",
}

// Region labels for the fallbacks after ContentSelectors.
const (
	RegionBody     = "body"
	RegionDocument = "document"
)

// LocateContent returns the first element matched by ContentSelectors, else
// the body, else the whole document, along with the label of what matched.
func LocateContent(doc *goquery.Document) (*goquery.Selection, string) {
	for _, selector := range ContentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel, selector
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body, RegionBody
	}
	return doc.Selection, RegionDocument
}

// RegionHTML returns the outer HTML of the content region of doc.
func RegionHTML(doc *goquery.Document) (string, error) {
	region, label := LocateContent(doc)
	if label == RegionDocument {
		return region.Html()
	}
	return goquery.OuterHtml(region)
}

// ContentHTML returns the outer HTML of the content region of a fetched
// document.
func ContentHTML(d *pagelens.Document) (string, error) {
	return RegionHTML(newDocument(d))
}
