// Package http provides the retrieval client: an implementation of
// pagelens.Fetcher that tries several HTTP strategies in a fixed order and
// decodes the first successful response into a parsed document.
package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/stealth"
	"github.com/hashicorp/go-retryablehttp"
)

// Default strategy settings.
const (
	DefaultPrimaryTimeout = 10 * time.Second
	DefaultSimpleTimeout  = 8 * time.Second
	DefaultRawTimeout     = 5 * time.Second

	DefaultMinDelay = 100 * time.Millisecond
	DefaultMaxDelay = 300 * time.Millisecond

	DefaultRetryMax     = 3
	DefaultRetryWaitMin = 1 * time.Second
	DefaultRetryWaitMax = 8 * time.Second
)

// MaxBodySize limits how much of a response body is read.
const MaxBodySize = 10 * 1024 * 1024

// Ensure Client implements pagelens.Fetcher at compile time.
var _ pagelens.Fetcher = (*Client)(nil)

// Client fetches pages by trying its strategies in order until one succeeds.
// All strategies share one pooled transport. Client is safe for concurrent
// use; retry and backoff state is local to each call.
type Client struct {
	identities pagelens.IdentitySource
	transport  http.RoundTripper
	strategies []pagelens.Strategy
	wrap       func(pagelens.Strategy) pagelens.Strategy

	primaryTimeout time.Duration
	simpleTimeout  time.Duration
	rawTimeout     time.Duration

	minDelay time.Duration
	maxDelay time.Duration

	retryMax     int
	retryWaitMin time.Duration
	retryWaitMax time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithIdentities sets the identity source used by the primary and simplified
// strategies. Defaults to a random draw from stealth.UserAgents.
func WithIdentities(src pagelens.IdentitySource) Option {
	return func(c *Client) {
		c.identities = src
	}
}

// WithTimeouts sets the per-attempt timeouts of the three strategies.
// Zero values keep the defaults.
func WithTimeouts(primary, simple, raw time.Duration) Option {
	return func(c *Client) {
		if primary > 0 {
			c.primaryTimeout = primary
		}
		if simple > 0 {
			c.simpleTimeout = simple
		}
		if raw > 0 {
			c.rawTimeout = raw
		}
	}
}

// WithDelay sets the bounds of the random delay before a primary attempt.
// WithDelay(0, 0) disables the delay.
func WithDelay(lo, hi time.Duration) Option {
	return func(c *Client) {
		c.minDelay = lo
		c.maxDelay = hi
	}
}

// WithRetry configures the primary strategy's retry policy.
func WithRetry(max int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryMax = max
		c.retryWaitMin = waitMin
		c.retryWaitMax = waitMax
	}
}

// WithTransport sets the transport shared by all strategies.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithStrategies replaces the default strategies.
func WithStrategies(strategies ...pagelens.Strategy) Option {
	return func(c *Client) {
		c.strategies = strategies
	}
}

// WithStrategyWrapper decorates every strategy, e.g. with logging.
func WithStrategyWrapper(fn func(pagelens.Strategy) pagelens.Strategy) Option {
	return func(c *Client) {
		c.wrap = fn
	}
}

// NewClient creates a Client with the primary, simplified and raw strategies.
func NewClient(opts ...Option) *Client {
	c := &Client{
		primaryTimeout: DefaultPrimaryTimeout,
		simpleTimeout:  DefaultSimpleTimeout,
		rawTimeout:     DefaultRawTimeout,
		minDelay:       DefaultMinDelay,
		maxDelay:       DefaultMaxDelay,
		retryMax:       DefaultRetryMax,
		retryWaitMin:   DefaultRetryWaitMin,
		retryWaitMax:   DefaultRetryWaitMax,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.identities == nil {
		c.identities = stealth.NewRandomSource()
	}

	if c.strategies == nil {
		retryClient := retryablehttp.NewClient()
		if c.transport == nil {
			c.transport = retryClient.HTTPClient.Transport
		}
		retryClient.HTTPClient = &http.Client{
			Transport: c.transport,
			Timeout:   c.primaryTimeout,
		}
		retryClient.RetryMax = c.retryMax
		retryClient.RetryWaitMin = c.retryWaitMin
		retryClient.RetryWaitMax = c.retryWaitMax
		retryClient.CheckRetry = retryPolicy
		retryClient.Backoff = cappedBackoff
		retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
		retryClient.Logger = nil

		c.strategies = []pagelens.Strategy{
			&PrimaryStrategy{
				client:     retryClient,
				identities: c.identities,
				minDelay:   c.minDelay,
				maxDelay:   c.maxDelay,
			},
			&SimpleStrategy{
				client:     &http.Client{Transport: c.transport, Timeout: c.simpleTimeout},
				identities: c.identities,
			},
			&RawStrategy{
				client: &http.Client{Transport: c.transport, Timeout: c.rawTimeout},
			},
		}
	}

	if c.wrap != nil {
		for i, s := range c.strategies {
			c.strategies[i] = c.wrap(s)
		}
	}

	return c
}

// Strategies returns the strategies in attempt order.
func (c *Client) Strategies() []pagelens.Strategy {
	return append([]pagelens.Strategy(nil), c.strategies...)
}

// Fetch retrieves the URL with each strategy in turn and returns the first
// document produced. When every strategy fails the error is a
// *pagelens.FetchError listing each failure.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*pagelens.Document, error) {
	if err := validateURL(rawURL); err != nil {
		return nil, err
	}

	failures := make([]pagelens.StrategyFailure, 0, len(c.strategies))
	for _, s := range c.strategies {
		doc, err := s.Attempt(ctx, rawURL)
		if err == nil && doc == nil {
			err = errors.New("no document returned")
		}
		if err == nil {
			return doc, nil
		}
		failures = append(failures, pagelens.StrategyFailure{Strategy: s.Name(), Err: err})
	}

	return nil, &pagelens.FetchError{URL: rawURL, Failures: failures}
}

// Close releases idle pooled connections.
func (c *Client) Close() error {
	if t, ok := c.transport.(interface{ CloseIdleConnections() }); ok {
		t.CloseIdleConnections()
	}
	return nil
}

func validateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return pagelens.Errorf(pagelens.EINVALID, "invalid URL %q: missing host", rawURL)
	}
	return nil
}
