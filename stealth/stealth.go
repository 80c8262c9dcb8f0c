// Package stealth provides client identities and header templates that
// resemble ordinary browser traffic.
package stealth

import (
	"math/rand/v2"
	"net/http"
	"net/url"
	"sync"

	"github.com/fwojciec/pagelens"
)

// UserAgents is the pool of identities handed out by RandomSource.
var UserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.1 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:120.0) Gecko/20100101 Firefox/120.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
}

// browserHeaders is the header template sent with every primary request.
var browserHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.9",
	"Accept-Encoding":           "gzip, deflate, br, zstd",
	"DNT":                       "1",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
	"Sec-Fetch-Dest":            "document",
	"Sec-Fetch-Mode":            "navigate",
	"Sec-Fetch-Site":            "none",
	"Sec-Fetch-User":            "?1",
	"Cache-Control":             "max-age=0",
}

// BrowserHeaders returns the full browser-like header set for a request to
// pageURL made with the given identity. A Referer of the page origin is
// added when pageURL has a host.
func BrowserHeaders(id pagelens.Identity, pageURL string) http.Header {
	h := make(http.Header, len(browserHeaders)+2)
	for k, v := range browserHeaders {
		h.Set(k, v)
	}
	h.Set("User-Agent", id.UserAgent)
	if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
		h.Set("Referer", u.Scheme+"://"+u.Host+"/")
	}
	return h
}

// MinimalHeaders returns a header set carrying only the identity.
func MinimalHeaders(id pagelens.Identity) http.Header {
	h := make(http.Header, 1)
	h.Set("User-Agent", id.UserAgent)
	return h
}

// Ensure RandomSource implements pagelens.IdentitySource at compile time.
var _ pagelens.IdentitySource = (*RandomSource)(nil)

// RandomSource picks identities uniformly at random from a pool.
// It is safe for concurrent use.
type RandomSource struct {
	agents []string
}

// NewRandomSource returns a source drawing from agents, or from UserAgents
// when none are given.
func NewRandomSource(agents ...string) *RandomSource {
	if len(agents) == 0 {
		agents = UserAgents
	}
	return &RandomSource{agents: agents}
}

// Next returns a random identity.
func (s *RandomSource) Next() pagelens.Identity {
	return pagelens.Identity{UserAgent: s.agents[rand.IntN(len(s.agents))]}
}

// Ensure Sequence implements pagelens.IdentitySource at compile time.
var _ pagelens.IdentitySource = (*Sequence)(nil)

// Sequence hands out identities in a fixed, repeating order.
// It is safe for concurrent use.
type Sequence struct {
	mu     sync.Mutex
	agents []string
	next   int
}

// NewSequence returns a Sequence cycling through agents.
// An empty list cycles through UserAgents.
func NewSequence(agents ...string) *Sequence {
	if len(agents) == 0 {
		agents = UserAgents
	}
	return &Sequence{agents: agents}
}

// Next returns the next identity in the sequence.
func (s *Sequence) Next() pagelens.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := pagelens.Identity{UserAgent: s.agents[s.next]}
	s.next = (s.next + 1) % len(s.agents)
	return id
}
