// Package fetcher retrieves remote web pages and reduces them to plain text.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	fetchTimeout = 20 * time.Second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
)

// ErrNoContent is returned when a fetched page strips down to nothing.
var ErrNoContent = errors.New("no content found")

// Fetcher downloads pages over HTTP and extracts their text.
type Fetcher struct {
	client *http.Client
	log    *slog.Logger
}

// New builds a Fetcher with its own HTTP client.
func New(log *slog.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: fetchTimeout},
		log:    log,
	}
}

// FetchAndExtract downloads url and returns its plain text. A page whose
// stripped text is empty is a terminal error for the calling request, never an
// empty success.
func (f *Fetcher) FetchAndExtract(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.log.Error("Failed to close response body",
				"error", err,
				"url", url)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch page: unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read page body: %w", err)
	}

	text := Extract(string(body))
	if text == "" {
		return "", ErrNoContent
	}

	return text, nil
}
