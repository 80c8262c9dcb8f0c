package pagelens

import (
	"bytes"
	"context"
	"encoding/json"
)

// Catalog option bounds and defaults.
const (
	DefaultMaxLinks    = 50
	MinMaxLinks        = 1
	MaxMaxLinks        = 200
	DefaultEnrichLimit = 10
	MinEnrichLimit     = 1
	MaxEnrichLimit     = 50
)

// CatalogEntry maps a normalized link URL to its description.
type CatalogEntry struct {
	URL         string
	Description string
}

// LinkCatalog is an ordered mapping from normalized URL to description.
// Entries keep the order in which links were first seen on the page.
type LinkCatalog struct {
	Entries []CatalogEntry
}

// Len returns the number of entries.
func (c *LinkCatalog) Len() int {
	return len(c.Entries)
}

// Get returns the description for url.
func (c *LinkCatalog) Get(url string) (string, bool) {
	for _, e := range c.Entries {
		if e.URL == url {
			return e.Description, true
		}
	}
	return "", false
}

// URLs returns the catalog URLs in order.
func (c *LinkCatalog) URLs() []string {
	urls := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		urls[i] = e.URL
	}
	return urls
}

// MarshalJSON encodes the catalog as a JSON object whose keys appear in
// catalog order.
func (c *LinkCatalog) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.URL)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Description)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CatalogOptions configures link catalog construction.
type CatalogOptions struct {
	// MaxLinks caps the number of unique entries, in [1, 200].
	MaxLinks int

	// UseAnchorText allows the visible anchor text as a description.
	UseAnchorText bool

	// UseTitleAttr allows aria-label and title attributes as descriptions.
	UseTitleAttr bool

	// Enrich fetches linked pages to improve short descriptions.
	Enrich bool

	// EnrichLimit caps how many leading entries are considered for
	// enrichment, in [1, 50].
	EnrichLimit int
}

// DefaultCatalogOptions returns the options used when a caller supplies none.
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		MaxLinks:      DefaultMaxLinks,
		UseAnchorText: true,
		UseTitleAttr:  true,
		EnrichLimit:   DefaultEnrichLimit,
	}
}

// Normalize returns a copy of the options with limits clamped into range.
func (o CatalogOptions) Normalize() CatalogOptions {
	o.MaxLinks = clamp(o.MaxLinks, MinMaxLinks, MaxMaxLinks)
	o.EnrichLimit = clamp(o.EnrichLimit, MinEnrichLimit, MaxEnrichLimit)
	return o
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// LinkCataloger fetches a page and builds its link catalog.
type LinkCataloger interface {
	BuildCatalog(ctx context.Context, url string, opts CatalogOptions) (*LinkCatalog, error)
}
