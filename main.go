package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"airbnb-rooms-scraper/config"
	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/scraper/airbnb"
	"airbnb-rooms-scraper/services"
	"airbnb-rooms-scraper/storage"
	"airbnb-rooms-scraper/utils"
)

func main() {
	inputPath := flag.String("input", "data/sample_input.json", "path to input JSON file with room URLs")
	outputPath := flag.String("output", "data/sample_output.json", "path to output JSON file")
	settingsPath := flag.String("settings", "config/settings.example.json", "path to settings JSON file")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	flag.Parse()

	// ================== Bootstrap ====================
	logger := utils.NewLogger(*verbose)
	cfg := config.Load(*settingsPath, logger)

	logger.Info("Airbnb Rooms Scraper")
	logger.Info("Workers: %d | Timeout: %.1fs | Retries: %d | Rate delay: %dms | Render JS: %v",
		cfg.MaxWorkers, cfg.RequestTimeout, cfg.MaxRetries, cfg.RateLimitDelay, cfg.RenderJS)

	// =================== Input ========================================
	urls, err := config.LoadURLs(*inputPath)
	if err != nil {
		logger.Error("Unable to load input URLs: %v", err)
		os.Exit(1)
	}

	tracker := utils.NewURLTracker()
	unique := make([]string, 0, len(urls))
	for _, u := range urls {
		if tracker.Add(u) {
			unique = append(unique, u)
		} else {
			logger.Debug("Skipping duplicate URL: %s", u)
		}
	}
	logger.Info("Loaded %d URL(s) from %s (%d unique)", len(urls), *inputPath, len(unique))

	// =============== Scraping ===================================
	scraper := airbnb.NewScraper(cfg, logger)
	rawRooms := scraper.Scrape(context.Background(), unique)

	// =========== Normalization ======================
	normalizer := services.NewPayloadNormalizer(logger)
	rooms := normalizer.NormalizeAll(rawRooms)

	// ========= JSON: canonical output ===========================
	jsonWriter := storage.NewJSONWriter(*outputPath, logger)
	if err := jsonWriter.SaveRooms(rooms); err != nil {
		logger.Error("Failed to write output JSON: %v", err)
		os.Exit(1)
	}

	// ========= CSV: optional flat summary ============
	if cfg.CSVFilePath != "" {
		csvWriter := storage.NewCSVWriter(cfg.CSVFilePath, logger)
		if err := csvWriter.SaveRooms(rooms); err != nil {
			logger.Error("Failed to write CSV summary: %v", err)
			// Non-fatal: the JSON output is the contract
		}
	}

	// ========= PostgreSQL: optional persistence ============
	if cfg.DatabaseURL != "" {
		persistRooms(cfg.DatabaseURL, rooms, logger)
	}

	// ==== Insights ============================
	insightSvc := services.NewInsightService(logger)
	report := insightSvc.Generate(rooms)
	services.PrintInsightReport(report)

	fmt.Println(" Done! Output →", *outputPath)
}

// persistRooms stores the payloads in PostgreSQL. DB trouble is logged
// and swallowed: the JSON output already exists at this point.
func persistRooms(databaseURL string, rooms []*models.Room, logger *utils.Logger) {
	pgWriter, err := storage.NewPostgresWriter(databaseURL, logger)
	if err != nil {
		logger.Error("Cannot connect to PostgreSQL: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.CreateTable(); err != nil {
		logger.Error("Failed to create DB table: %v", err)
		return
	}
	if err := pgWriter.SaveRooms(rooms); err != nil {
		logger.Error("Failed to insert into PostgreSQL: %v", err)
	}
}
