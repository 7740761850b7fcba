package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"
)

// JSONWriter writes the normalized payloads as an indented JSON array.
// This is the run's canonical output.
type JSONWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewJSONWriter creates a new JSONWriter
func NewJSONWriter(filePath string, logger *utils.Logger) *JSONWriter {
	return &JSONWriter{filePath: filePath, logger: logger}
}

// SaveRooms writes the payload array as UTF-8 JSON with two-space
// indentation. An empty run still produces a valid empty array.
func (w *JSONWriter) SaveRooms(rooms []*models.Room) error {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if rooms == nil {
		rooms = []*models.Room{}
	}

	data, err := json.MarshalIndent(rooms, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err := os.WriteFile(w.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	w.logger.Info("Wrote %d record(s) to %s", len(rooms), w.filePath)
	return nil
}
