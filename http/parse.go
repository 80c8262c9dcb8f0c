package http

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// ParseFunc builds an HTML tree from decoded text.
type ParseFunc func(r io.Reader) (*html.Node, error)

// DefaultParsers is the parser chain tried in order before falling back to
// parsing the raw bytes.
var DefaultParsers = []ParseFunc{parseGoquery, htmlquery.Parse}

func parseGoquery(r io.Reader) (*html.Node, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	if len(doc.Nodes) == 0 {
		return nil, errors.New("empty document")
	}
	return doc.Nodes[0], nil
}

// Parse parses text with each parser in turn. When all of them fail it
// parses the undecoded bytes so that a tree is produced whenever possible.
func Parse(text string, raw []byte, parsers ...ParseFunc) (*html.Node, error) {
	if len(parsers) == 0 {
		parsers = DefaultParsers
	}

	var errs []error
	for _, parse := range parsers {
		root, err := parse(strings.NewReader(text))
		if err == nil && root != nil {
			return root, nil
		}
		if err == nil {
			err = errors.New("parser returned no tree")
		}
		errs = append(errs, err)
	}

	root, err := html.Parse(bytes.NewReader(raw))
	if err == nil {
		return root, nil
	}
	errs = append(errs, err)
	return nil, fmt.Errorf("parsing HTML: %w", errors.Join(errs...))
}
