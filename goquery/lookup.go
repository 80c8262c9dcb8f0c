package goquery

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Lookup resolves one candidate value for a field. An empty result means
// the candidate is absent.
type Lookup func(doc *goquery.Document) string

// FirstNonEmpty returns the first lookup result that is non-empty after
// whitespace collapsing, or "" when every lookup misses.
func FirstNonEmpty(doc *goquery.Document, lookups ...Lookup) string {
	for _, lookup := range lookups {
		if v := CollapseText(lookup(doc)); v != "" {
			return v
		}
	}
	return ""
}

// MetaProperty looks up the content of meta[property=prop].
func MetaProperty(prop string) Lookup {
	return Attr(fmt.Sprintf("meta[property=%q]", prop), "content")
}

// MetaName looks up the content of meta[name=name].
func MetaName(name string) Lookup {
	return Attr(fmt.Sprintf("meta[name=%q]", name), "content")
}

// Attr looks up the first non-blank value of attr among elements matching
// selector.
func Attr(selector, attr string) Lookup {
	return func(doc *goquery.Document) string {
		return firstAttr(doc.Find(selector), attr)
	}
}

// Content looks up the first element matching selector with non-empty
// content. Meta elements contribute their content attribute. Other elements
// contribute the first non-blank of attrs, else their text.
func Content(selector string, attrs ...string) Lookup {
	return func(doc *goquery.Document) string {
		var out string
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			out = contentOf(s, attrs)
			return out == ""
		})
		return out
	}
}

// Const always yields v.
func Const(v string) Lookup {
	return func(*goquery.Document) string { return v }
}

func contentOf(s *goquery.Selection, attrs []string) string {
	if goquery.NodeName(s) == "meta" {
		return CleanText(s.AttrOr("content", ""))
	}
	for _, attr := range attrs {
		if v := CleanText(s.AttrOr(attr, "")); v != "" {
			return v
		}
	}
	return NodeText(s)
}

func firstAttr(sel *goquery.Selection, attr string) string {
	var out string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		out = CleanText(s.AttrOr(attr, ""))
		return out == ""
	})
	return out
}
