// Package slog provides logging decorators for pc-api interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	pcapi "github.com/williamsiker/pc-api"
)

// Ensure Fetcher implements pcapi.Fetcher at compile time.
var _ pcapi.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a pcapi.Fetcher with request logging.
type Fetcher struct {
	next   pcapi.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a new logging Fetcher.
func NewFetcher(next pcapi.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
