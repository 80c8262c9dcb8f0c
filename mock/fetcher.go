package mock

import (
	"context"

	"github.com/fwojciec/pagelens"
)

var _ pagelens.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagelens.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pagelens.Document, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pagelens.Document, error) {
	return f.FetchFn(ctx, url)
}

var _ pagelens.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of pagelens.Strategy.
type Strategy struct {
	NameFn    func() string
	AttemptFn func(ctx context.Context, url string) (*pagelens.Document, error)
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Attempt(ctx context.Context, url string) (*pagelens.Document, error) {
	return s.AttemptFn(ctx, url)
}

var _ pagelens.IdentitySource = (*IdentitySource)(nil)

// IdentitySource is a mock implementation of pagelens.IdentitySource.
type IdentitySource struct {
	NextFn func() pagelens.Identity
}

func (s *IdentitySource) Next() pagelens.Identity {
	return s.NextFn()
}

var _ pagelens.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of pagelens.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, rawURL string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, rawURL string) error {
	return l.WaitFn(ctx, rawURL)
}
