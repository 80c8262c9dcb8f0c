package pagelens

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown.
	// Relative links and image sources are resolved against baseURL.
	Convert(html string, baseURL string) (string, error)
}
