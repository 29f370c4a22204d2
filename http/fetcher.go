// Package http provides the HTTP boundary of pc-api: the page fetcher
// and contest index client on the outbound side, and the JSON API
// server on the inbound side.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	pcapi "github.com/williamsiker/pc-api"
)

// DefaultFetchTimeout is the default timeout for outbound requests.
const DefaultFetchTimeout = 30 * time.Second

// DefaultUserAgent identifies this scraper to upstream servers.
const DefaultUserAgent = "pc-api/1.0 (+https://github.com/williamsiker/pc-api)"

// Ensure Fetcher implements pcapi.Fetcher at compile time.
var _ pcapi.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves problem pages over plain HTTP. AtCoder task pages
// are server-rendered, so no browser automation is needed.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header for outbound requests.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the document at the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pcapi.Errorf(pcapi.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", pcapi.Errorf(pcapi.ENOTFOUND, "document not found at %s", url)
	case resp.StatusCode != http.StatusOK:
		return "", pcapi.Errorf(pcapi.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
