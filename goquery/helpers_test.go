package goquery_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagelens"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const pageURL = "https://example.com/blog/post"

// page parses src into a document fetched from pageURL.
func page(t *testing.T, src string) *pagelens.Document {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return &pagelens.Document{
		URL:         pageURL,
		FinalURL:    pageURL,
		ContentType: "text/html; charset=utf-8",
		Charset:     "utf-8",
		Strategy:    "primary",
		Root:        root,
	}
}

func doc(t *testing.T, src string) *goquery.Document {
	t.Helper()
	d, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	require.NoError(t, err)
	return d
}
