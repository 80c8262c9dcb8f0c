// Package goquery implements the field, metadata, content-region, article
// and link extractors over parsed documents using goquery selections.
package goquery

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// strict is safe for concurrent use once constructed.
var strict = bluemonday.StrictPolicy()

// CleanText strips markup from an attribute or meta value, then decodes
// entities and collapses whitespace. Use CollapseText for element text.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	return CollapseText(strict.Sanitize(s))
}

// CollapseText decodes HTML entities and collapses runs of whitespace into
// single spaces. Angle brackets in the text are kept.
func CollapseText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

// NodeText returns the collapsed text of the selection. Text nodes are
// joined with spaces and script and style contents are skipped.
func NodeText(sel *goquery.Selection) string {
	var parts []string
	for _, n := range sel.Nodes {
		collectText(n, &parts)
	}
	return CollapseText(strings.Join(parts, " "))
}

func collectText(n *nethtml.Node, parts *[]string) {
	switch n.Type {
	case nethtml.TextNode:
		*parts = append(*parts, n.Data)
		return
	case nethtml.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
