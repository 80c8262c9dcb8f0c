package pagelens

import (
	"context"
	"fmt"
	"strings"
)

// Fetcher retrieves a URL and parses it into a Document.
// Implementations try several retrieval strategies and only fail when
// every strategy has failed.
type Fetcher interface {
	// Fetch retrieves the URL and returns the parsed document.
	// The context controls timeout and cancellation of all attempts.
	Fetch(ctx context.Context, url string) (*Document, error)
}

// Strategy is one way of retrieving a page. A Fetcher evaluates its
// strategies left to right and stops at the first success.
type Strategy interface {
	// Name identifies the strategy in logs and combined errors.
	Name() string

	// Attempt performs one retrieval of the URL.
	Attempt(ctx context.Context, url string) (*Document, error)
}

// Identity is a client identity presented to remote servers.
type Identity struct {
	UserAgent string
}

// IdentitySource hands out identities, one per request.
// Implementations must be safe for concurrent use.
type IdentitySource interface {
	Next() Identity
}

// StrategyFailure records why a single strategy failed.
type StrategyFailure struct {
	Strategy string
	Err      error
}

// FetchError is returned when every retrieval strategy failed.
// The message enumerates each strategy's failure in attempt order.
type FetchError struct {
	URL      string
	Failures []StrategyFailure
}

func (e *FetchError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, fmt.Sprintf("%s: %v", f.Strategy, f.Err))
	}
	return fmt.Sprintf("all fetch strategies failed for %s: %s", e.URL, strings.Join(parts, "; "))
}

// Unwrap returns the individual strategy errors.
func (e *FetchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f.Err)
	}
	return errs
}

// DomainLimiter provides per-host rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the host of
	// rawURL. Returns an error if the context is canceled or the URL has
	// no host.
	Wait(ctx context.Context, rawURL string) error
}
