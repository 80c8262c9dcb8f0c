package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagelens"
	"github.com/fwojciec/pagelens/mock"
	lensslog "github.com/fwojciec/pagelens/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with strategy and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pagelens.Document, error) {
				return &pagelens.Document{URL: url, Strategy: "simplified", Charset: "utf-8"}, nil
			},
		}

		fetcher := lensslog.NewLoggingFetcher(inner, logger)
		doc, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "simplified", doc.Strategy)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "strategy=simplified")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pagelens.Document, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := lensslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		assert.Contains(t, buf.String(), `err="network error"`)
	})
}

func TestLoggingStrategy_Attempt(t *testing.T) {
	t.Parallel()

	t.Run("logs failures at warn level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			NameFn: func() string { return "primary" },
			AttemptFn: func(ctx context.Context, url string) (*pagelens.Document, error) {
				return nil, errors.New("HTTP 403 for " + url)
			},
		}

		s := lensslog.StrategyWrapper(logger)(inner)
		_, err := s.Attempt(context.Background(), "https://example.com")

		require.Error(t, err)
		assert.Equal(t, "primary", s.Name())
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "strategy=primary")
		assert.Contains(t, output, `err="HTTP 403 for https://example.com"`)
	})

	t.Run("logs success at debug level only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Strategy{
			NameFn: func() string { return "raw" },
			AttemptFn: func(ctx context.Context, url string) (*pagelens.Document, error) {
				return &pagelens.Document{URL: url}, nil
			},
		}

		s := lensslog.NewLoggingStrategy(inner, logger)
		_, err := s.Attempt(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
