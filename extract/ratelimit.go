package extract

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/fwojciec/pagelens"
	"golang.org/x/time/rate"
)

var _ pagelens.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces enrichment fetches with one token bucket per host.
// URLs on the same host share a bucket regardless of scheme, port or path.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter creates a DomainLimiter allowing rps requests per second
// to each host with the given burst. A burst below 1 is treated as 1.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   rate.Limit(rps),
		burst:   max(burst, 1),
	}
}

// Wait blocks until the bucket of rawURL's host has a token.
func (d *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	host, err := hostKey(rawURL)
	if err != nil {
		return err
	}
	return d.bucket(host).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()
	b, ok := d.buckets[host]
	if !ok {
		b = rate.NewLimiter(d.limit, d.burst)
		d.buckets[host] = b
	}
	return b
}

func hostKey(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Hostname() == "" {
		return "", pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return strings.ToLower(u.Hostname()), nil
}
