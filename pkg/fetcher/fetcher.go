// Package fetcher retrieves page source over HTTP and resolves the wiki's
// embedded redirect directives.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError reports a network failure or a non-2xx response for a URL.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status code %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Fetcher is an HTTP client for the corpus site. SourceSuffix is appended to
// page URLs to request raw wiki markdown instead of rendered HTML.
type Fetcher struct {
	client       *http.Client
	userAgent    string
	sourceSuffix string
}

func NewFetcher(userAgent, sourceSuffix string) *Fetcher {
	return &Fetcher{
		client:       &http.Client{Timeout: 30 * time.Second},
		userAgent:    userAgent,
		sourceSuffix: sourceSuffix,
	}
}

// GetText fetches a URL and returns the response body as a string.
func (f *Fetcher) GetText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return string(body), nil
}

// PageSource fetches the raw markdown source of a page URL.
func (f *Fetcher) PageSource(ctx context.Context, pageURL string) (string, error) {
	return f.GetText(ctx, pageURL+f.sourceSuffix)
}
