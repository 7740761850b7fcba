package airbnb

import (
	"context"
	"time"

	"airbnb-rooms-scraper/config"
	"airbnb-rooms-scraper/utils"

	"github.com/chromedp/chromedp"
)

// RenderedFetcher drives a headless browser so that pages whose static
// HTML is only a JS shell still yield real markup. Same retry contract as
// HTTPFetcher.
type RenderedFetcher struct {
	userAgent   string
	timeout     time.Duration
	maxRetries  int
	backoffUnit time.Duration
	logger      *utils.Logger
}

// NewRenderedFetcher creates a browser-backed fetcher from the same
// configuration the HTTP fetcher uses.
func NewRenderedFetcher(cfg *config.Config, logger *utils.Logger) *RenderedFetcher {
	return &RenderedFetcher{
		userAgent:   cfg.UserAgent,
		timeout:     time.Duration(cfg.RequestTimeout * float64(time.Second)),
		maxRetries:  cfg.MaxRetries,
		backoffUnit: time.Second,
		logger:      logger,
	}
}

// newContext creates a fresh chromedp context (one browser, one tab)
func (f *RenderedFetcher) newContext(parent context.Context) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("log-level", "3"),
		chromedp.UserAgent(f.userAgent),
		chromedp.WindowSize(1280, 900),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))

	cancel := func() {
		cancelCtx()
		cancelAlloc()
	}
	return ctx, cancel
}

// Fetch navigates to the URL, waits for the page to render, and returns
// the rendered outer HTML.
func (f *RenderedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var body string
	var lastErr error
	attempt := 0

	err := utils.Retry(f.maxRetries+1, utils.LinearBackoff(f.backoffUnit), func() error {
		attempt++
		f.logger.Debug("Rendering %s (attempt %d)", url, attempt)

		tabCtx, cancel := f.newContext(ctx)
		defer cancel()

		tabCtx, cancelTimeout := context.WithTimeout(tabCtx, f.timeout)
		defer cancelTimeout()

		var rendered string
		err := chromedp.Run(tabCtx,
			chromedp.Navigate(url),
			chromedp.Sleep(3*time.Second), // give JS time to render
			chromedp.OuterHTML("html", &rendered),
		)
		if err != nil {
			lastErr = err
			f.logger.Warn("Render error for %s on attempt %d: %v", url, attempt, err)
			return err
		}
		body = rendered
		return nil
	}, f.logger)

	if err != nil {
		return "", &FetchError{URL: url, Attempts: attempt, Err: lastErr}
	}
	return body, nil
}
