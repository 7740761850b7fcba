package airbnb

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"airbnb-rooms-scraper/config"
	"airbnb-rooms-scraper/utils"
)

// Fetcher retrieves the raw HTML of one page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetchError reports a URL whose retry budget is exhausted. It carries the
// last transport error seen, if any; a run of bad statuses leaves Err nil.
type FetchError struct {
	URL      string
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s after %d attempt(s): %v", e.URL, e.Attempts, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s after %d attempt(s)", e.URL, e.Attempts)
}

func (e *FetchError) Unwrap() error { return e.Err }

func defaultHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent":      userAgent,
		"Accept-Language": "en-US,en;q=0.9",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	}
}

// HTTPFetcher fetches pages over plain HTTP with bounded retries. Not safe
// for concurrent use across workers; each worker owns its own instance
// (and therefore its own connection pool).
type HTTPFetcher struct {
	client      *http.Client
	headers     map[string]string
	maxRetries  int
	backoffUnit time.Duration
	logger      *utils.Logger
}

// NewHTTPFetcher creates a fetcher with the configured per-attempt timeout
// and retry budget.
func NewHTTPFetcher(cfg *config.Config, logger *utils.Logger) *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout * float64(time.Second)),
		},
		headers:     defaultHeaders(cfg.UserAgent),
		maxRetries:  cfg.MaxRetries,
		backoffUnit: time.Second,
		logger:      logger,
	}
}

// Fetch retrieves the page body, accepting only HTTP 200. Any other status
// or transport error is retried up to maxRetries times with linear backoff
// (1, 2, 3, ... units) between attempts.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body string
	var lastTransportErr error
	attempt := 0

	err := utils.Retry(f.maxRetries+1, utils.LinearBackoff(f.backoffUnit), func() error {
		attempt++
		f.logger.Debug("Fetching %s (attempt %d)", url, attempt)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			lastTransportErr = err
			return err
		}
		for key, value := range f.headers {
			req.Header.Set(key, value)
		}

		resp, err := f.client.Do(req)
		if err != nil {
			lastTransportErr = err
			f.logger.Warn("Request error for %s on attempt %d: %v", url, attempt, err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			f.logger.Warn("Non-200 status %d for %s on attempt %d", resp.StatusCode, url, attempt)
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			lastTransportErr = err
			return err
		}
		body = string(data)
		return nil
	}, f.logger)

	if err != nil {
		return "", &FetchError{URL: url, Attempts: attempt, Err: lastTransportErr}
	}
	return body, nil
}
