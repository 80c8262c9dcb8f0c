package pagelens

// Metadata describes a page. Every URL it holds is absolute, resolved
// against the page URL. Empty strings mean the field could not be resolved.
type Metadata struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	SiteName    string     `json:"site_name"`
	Canonical   string     `json:"canonical"`
	Language    string     `json:"language"`
	Favicon     string     `json:"favicon"`
	Author      string     `json:"author"`
	Published   string     `json:"published"`
	OpenGraph   OpenGraph  `json:"open_graph"`
	Twitter     Twitter    `json:"twitter"`
	Robots      string     `json:"robots"`
	Viewport    string     `json:"viewport"`
	Generator   string     `json:"generator"`
	Tags        []string   `json:"tags"`
	Technical   *Technical `json:"technical,omitempty"`
}

// OpenGraph holds the Open Graph preview fields.
type OpenGraph struct {
	Image string `json:"image"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// Twitter holds the Twitter card preview fields.
type Twitter struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Technical holds page statistics. It is only present when requested.
type Technical struct {
	ImagesCount int    `json:"images_count"`
	LinksCount  int    `json:"links_count"`
	Charset     string `json:"charset"`
	ContentType string `json:"content_type"`
}
