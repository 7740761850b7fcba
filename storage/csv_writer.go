package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"
)

// CSVWriter exports a flat per-room summary next to the JSON output
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// SaveRooms writes one summary row per room
func (w *CSVWriter) SaveRooms(rooms []*models.Room) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(w.filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"url", "property_type", "person_capacity", "currency",
		"nightly_price", "guest_satisfaction", "reviews_count",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, room := range rooms {
		row := []string{
			derefString(room.URL),
			derefString(room.PropertyType),
			derefInt(room.PersonCapacity),
			"",
			"",
			derefFloat(room.Rating.GuestSatisfaction),
			derefInt(room.Rating.ReviewsCount),
		}
		if room.Price != nil {
			row[3] = derefString(room.Price.CurrencySymbol)
			row[4] = strconv.FormatFloat(room.Price.Amount, 'f', 2, 64)
		}
		if err := writer.Write(row); err != nil {
			w.logger.Error("Failed to write CSV row for '%s': %v", derefString(room.URL), err)
		}
	}

	w.logger.Info("Room summary written to: %s (%d rows)", w.filePath, len(rooms))
	return nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(i *int) string {
	if i == nil {
		return ""
	}
	return strconv.Itoa(*i)
}

func derefFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', 2, 64)
}
