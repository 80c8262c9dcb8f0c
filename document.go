package pagelens

import "golang.org/x/net/html"

// Document is a retrieved and parsed page. It is produced once per fetch,
// never cached across calls, and must not be modified by extraction code.
type Document struct {
	// URL is the URL that was requested.
	URL string

	// FinalURL is the URL after redirects were followed.
	FinalURL string

	// ContentType is the Content-Type header of the response.
	ContentType string

	// Charset is the character encoding used to decode the body.
	Charset string

	// Strategy names the retrieval strategy that produced the document.
	Strategy string

	// Root is the parsed HTML tree.
	Root *html.Node
}
