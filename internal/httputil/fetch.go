// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/pdiddy/texclean/pkg/types"
)

// DefaultMaxBytes bounds the size of a fetched document.
const DefaultMaxBytes = 32 << 20

// Fetcher downloads documents with a fixed User-Agent and retry policy.
type Fetcher struct {
	client     *http.Client
	userAgent  string
	maxRetries int
	maxBytes   int64
	logger     *slog.Logger
}

// NewFetcher builds a Fetcher from cfg. A nil client gets one with
// cfg.Timeout.
func NewFetcher(client *http.Client, cfg types.FetchConfig, logger *slog.Logger) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	return &Fetcher{
		client:     client,
		userAgent:  cfg.UserAgent,
		maxRetries: cfg.MaxRetries,
		maxBytes:   DefaultMaxBytes,
		logger:     logger,
	}
}

// Get returns the body of url. Any final status other than 200 is an
// error, as is a body larger than DefaultMaxBytes.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	req.Header.Set("Accept", "text/x-tex, text/plain;q=0.9, */*;q=0.1")

	resp, err := DoWithRetry(ctx, f.client, req, f.maxRetries, f.logger)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, fmt.Errorf("fetching %s: body exceeds %d bytes", url, f.maxBytes)
	}
	return data, nil
}
