// Package slog provides logging decorators for the pagelens interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagelens"
)

// Ensure LoggingFetcher implements pagelens.Fetcher.
var _ pagelens.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pagelens.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pagelens.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (doc *pagelens.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if doc != nil {
			attrs = append(attrs, "strategy", doc.Strategy, "charset", doc.Charset)
		}
		if err != nil {
			attrs = append(attrs, "err", err)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Ensure LoggingStrategy implements pagelens.Strategy.
var _ pagelens.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps a retrieval strategy. Failures are logged at warn
// level since a later strategy may still succeed.
type LoggingStrategy struct {
	next   pagelens.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next pagelens.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// StrategyWrapper returns a function that wraps strategies with logging,
// suitable for http.WithStrategyWrapper.
func StrategyWrapper(logger *slog.Logger) func(pagelens.Strategy) pagelens.Strategy {
	return func(s pagelens.Strategy) pagelens.Strategy {
		return NewLoggingStrategy(s, logger)
	}
}

// Name returns the wrapped strategy's name.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Attempt delegates to the wrapped strategy and logs the outcome.
func (s *LoggingStrategy) Attempt(ctx context.Context, url string) (doc *pagelens.Document, err error) {
	defer func(begin time.Time) {
		if err != nil {
			s.logger.Warn("fetch strategy failed",
				"strategy", s.next.Name(),
				"url", url,
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		s.logger.Debug("fetch strategy succeeded",
			"strategy", s.next.Name(),
			"url", url,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.Attempt(ctx, url)
}
