package airbnb

import (
	"context"
	"fmt"
	"sync"

	"airbnb-rooms-scraper/config"
	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"
)

// Scraper fans room URLs out to a bounded worker pool. Each worker owns
// its own fetcher, and with it its own network session; the only state
// shared between workers is the rate limiter.
type Scraper struct {
	cfg        *config.Config
	logger     *utils.Logger
	limiter    *utils.RateLimiter
	newFetcher func() Fetcher
}

// NewScraper creates a Scraper. The renderJs setting selects the
// browser-backed fetcher instead of plain HTTP.
func NewScraper(cfg *config.Config, logger *utils.Logger) *Scraper {
	s := &Scraper{
		cfg:     cfg,
		logger:  logger,
		limiter: utils.NewRateLimiter(cfg.RateLimitDelay),
	}
	if cfg.RenderJS {
		s.newFetcher = func() Fetcher { return NewRenderedFetcher(cfg, logger) }
	} else {
		s.newFetcher = func() Fetcher { return NewHTTPFetcher(cfg, logger) }
	}
	return s
}

// Scrape processes every URL through fetch and extraction and returns one
// raw record per URL that survived its retry budget. A URL whose fetch
// exhausts retries is logged and dropped; its siblings are unaffected.
// Result order is unrelated to input order.
func (s *Scraper) Scrape(ctx context.Context, urls []string) []models.RawRoom {
	s.logger.Info("Starting scrape for %d URL(s) with up to %d worker(s)", len(urls), s.cfg.MaxWorkers)

	jobs := make(chan string)
	results := make(chan models.RawRoom)

	workers := s.cfg.MaxWorkers
	if workers > len(urls) {
		workers = len(urls)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fetcher := s.newFetcher()
			for url := range jobs {
				raw, err := s.scrapeRoom(ctx, fetcher, url)
				if err != nil {
					s.logger.Error("Failed to scrape %s: %v", url, err)
					continue
				}
				s.logger.Info("Successfully scraped %s", url)
				results <- raw
			}
		}()
	}

	go func() {
		for _, url := range urls {
			jobs <- url
		}
		close(jobs)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var collected []models.RawRoom
	for raw := range results {
		collected = append(collected, raw)
	}

	s.logger.Info("Finished scraping. Collected %d of %d record(s)", len(collected), len(urls))
	return collected
}

func (s *Scraper) scrapeRoom(ctx context.Context, fetcher Fetcher, url string) (models.RawRoom, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	htmlText, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(htmlText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", url, err)
	}

	return parseRoom(url, doc, s.logger), nil
}
