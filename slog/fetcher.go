// Package slog provides logging decorators for domain interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	parasite "github.com/trstickland/parasite-static"
)

// Ensure LoggingFetcher implements parasite.Fetcher.
var _ parasite.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with structured logging of each fetch
// outcome. A not-found page is an expected condition and is logged as
// such, not as an error.
type LoggingFetcher struct {
	next   parasite.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next parasite.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, url)

	outcome := "ok"
	switch {
	case parasite.ErrorCode(err) == parasite.ENOTFOUND:
		outcome = "not found"
	case err != nil:
		outcome = "error"
	}

	f.logger.Info("page fetch",
		"url", url,
		"outcome", outcome,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, err
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
