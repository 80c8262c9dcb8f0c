package http

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/stealth"
	"github.com/hashicorp/go-retryablehttp"
)

// Strategy names as they appear in FetchError messages and on documents.
const (
	StrategyPrimary    = "primary"
	StrategySimplified = "simplified"
	StrategyRaw        = "raw"
)

// retryStatuses are the status codes the primary strategy retries.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// retryPolicy retries the statuses in retryStatuses for idempotent reads and
// defers transport errors to the library default.
func retryPolicy(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil || resp == nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp.Request != nil {
		switch resp.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
		default:
			return false, nil
		}
	}
	return retryStatuses[resp.StatusCode], nil
}

// cappedBackoff is retryablehttp.DefaultBackoff with Retry-After values
// limited to hi, so a server cannot hold the primary strategy past the
// configured wait.
func cappedBackoff(lo, hi time.Duration, attemptNum int, resp *http.Response) time.Duration {
	return min(retryablehttp.DefaultBackoff(lo, hi, attemptNum, resp), hi)
}

// Ensure strategies implement pagelens.Strategy at compile time.
var (
	_ pagelens.Strategy = (*PrimaryStrategy)(nil)
	_ pagelens.Strategy = (*SimpleStrategy)(nil)
	_ pagelens.Strategy = (*RawStrategy)(nil)
)

// PrimaryStrategy sends a full browser-like header set after a short random
// delay and retries transient failures with exponential backoff.
type PrimaryStrategy struct {
	client     *retryablehttp.Client
	identities pagelens.IdentitySource
	minDelay   time.Duration
	maxDelay   time.Duration
}

func (s *PrimaryStrategy) Name() string { return StrategyPrimary }

func (s *PrimaryStrategy) Attempt(ctx context.Context, rawURL string) (*pagelens.Document, error) {
	if err := sleep(ctx, jitter(s.minDelay, s.maxDelay)); err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = stealth.BrowserHeaders(s.identities.Next(), rawURL)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return buildDocument(rawURL, resp, s.Name(), policyDecode)
}

// SimpleStrategy sends a single request with a minimal header set.
type SimpleStrategy struct {
	client     *http.Client
	identities pagelens.IdentitySource
}

func (s *SimpleStrategy) Name() string { return StrategySimplified }

func (s *SimpleStrategy) Attempt(ctx context.Context, rawURL string) (*pagelens.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = stealth.MinimalHeaders(s.identities.Next())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return buildDocument(rawURL, resp, s.Name(), policyDecode)
}

// RawStrategy sends a bare request and lets the HTML encoding sniffer
// decide how to decode the body.
type RawStrategy struct {
	client *http.Client
}

func (s *RawStrategy) Name() string { return StrategyRaw }

func (s *RawStrategy) Attempt(ctx context.Context, rawURL string) (*pagelens.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return buildDocument(rawURL, resp, s.Name(), sniffDecode)
}

// buildDocument checks the response status, reads and decodes the body, and
// parses it. Decoding and parsing problems degrade rather than fail.
func buildDocument(rawURL string, resp *http.Response, strategy string, decode decodeFunc) (*pagelens.Document, error) {
	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, rawURL)
	}

	body, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	contentType := resp.Header.Get("Content-Type")
	text, cs, err := decode(contentType, body)
	if err != nil {
		text, cs = string(body), "utf-8"
	}

	root, err := Parse(text, body)
	if err != nil {
		return nil, err
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &pagelens.Document{
		URL:         rawURL,
		FinalURL:    finalURL,
		ContentType: contentType,
		Charset:     cs,
		Strategy:    strategy,
		Root:        root,
	}, nil
}

// jitter returns a random duration in [lo, hi).
func jitter(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return max(lo, 0)
	}
	return lo + rand.N(hi-lo)
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
