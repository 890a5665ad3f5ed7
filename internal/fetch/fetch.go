// Package fetch retrieves raw document text over HTTP.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"w3u-navigator/internal/model"
)

const (
	// UserAgent identifies the navigator on outbound requests.
	UserAgent = "w3u-navigator/1.0"

	requestTimeout = 30 * time.Second
)

// Client is the shared HTTP client for document fetches.
var Client = &http.Client{Timeout: requestTimeout}

// Result is one fetched response. A non-success Status is surfaced here
// rather than as an error so callers can distinguish it from transport
// failures.
type Result struct {
	Status int
	Body   string
}

// Fetcher performs blocking, single-shot document fetches. There is no retry
// or backoff; a failed fetch fails the load that requested it.
type Fetcher struct {
	HTTP *http.Client
}

// New returns a Fetcher using the shared client.
func New() *Fetcher {
	return &Fetcher{HTTP: Client}
}

// Fetch requests rawURL and returns the status and UTF-8 body text.
// Transport-level failures return a wrapped model.ErrFetch.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrFetch, err)
	}
	req.Header.Set("User-Agent", UserAgent)
	resp, err := f.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", model.ErrFetch, rawURL, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", model.ErrFetch, rawURL, err)
	}
	text := strings.TrimPrefix(string(body), "\ufeff")
	return &Result{Status: resp.StatusCode, Body: text}, nil
}
