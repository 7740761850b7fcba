package services

import (
	"fmt"
	"strconv"
	"strings"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"
)

// PayloadNormalizer coerces raw extraction output into the canonical
// payload shape. Every branch has a safe default; Normalize never fails,
// whatever shape the raw record has.
type PayloadNormalizer struct {
	logger *utils.Logger
}

// NewPayloadNormalizer creates a new PayloadNormalizer
func NewPayloadNormalizer(logger *utils.Logger) *PayloadNormalizer {
	return &PayloadNormalizer{logger: logger}
}

// NormalizeAll normalizes a batch of raw records in order.
func (n *PayloadNormalizer) NormalizeAll(raws []models.RawRoom) []*models.Room {
	rooms := make([]*models.Room, 0, len(raws))
	for _, raw := range raws {
		rooms = append(rooms, n.Normalize(raw))
	}
	n.logger.Info("Normalized %d record(s)", len(rooms))
	return rooms
}

// Normalize converts a raw room record into a models.Room, field by
// field, applying documented defaults to anything missing or malformed.
func (n *PayloadNormalizer) Normalize(raw models.RawRoom) *models.Room {
	return &models.Room{
		URL:            optionalString(raw["url"]),
		PropertyType:   optionalString(raw["propertyType"]),
		PersonCapacity: coerceInt(raw["personCapacity"]),
		Rating:         n.normalizeRating(raw["rating"]),
		Amenities:      normalizeAmenities(raw["amenities"]),
		Highlights:     normalizeHighlights(raw["highlights"]),
		Images:         normalizeImages(raw["images"]),
		HostDetails:    normalizeHostDetails(raw["hostDetails"]),
		Price:          normalizePrice(raw["price"]),
	}
}

func (n *PayloadNormalizer) normalizeRating(raw any) models.Rating {
	m, ok := raw.(map[string]any)
	if !ok {
		// Missing or malformed rating yields an all-null record.
		return models.Rating{}
	}
	return models.Rating{
		Accuracy:          coerceFloat(m["accuracy"]),
		Checking:          coerceFloat(m["checking"]),
		Cleanliness:       coerceFloat(m["cleanliness"]),
		Communication:     coerceFloat(m["communication"]),
		Location:          coerceFloat(m["location"]),
		Value:             coerceFloat(m["value"]),
		GuestSatisfaction: coerceFloat(m["guestSatisfaction"]),
		ReviewsCount:      coerceInt(m["reviewsCount"]),
	}
}

func normalizeAmenities(raw any) []models.AmenityGroup {
	groups := make([]models.AmenityGroup, 0)

	list, ok := raw.([]any)
	if !ok {
		return groups
	}

	for _, entry := range list {
		groupMap, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		valuesRaw, ok := groupMap["values"].([]any)
		if !ok {
			continue
		}

		values := make([]models.Amenity, 0, len(valuesRaw))
		for _, item := range valuesRaw {
			itemMap, ok := item.(map[string]any)
			if !ok {
				continue
			}
			title := coerceString(itemMap["title"])
			if title == "" {
				continue
			}
			values = append(values, models.Amenity{
				Title:     title,
				Available: coerceBool(itemMap["available"], true),
			})
		}
		if len(values) == 0 {
			continue
		}

		title := coerceString(groupMap["title"])
		if title == "" {
			title = "Amenities"
		}
		groups = append(groups, models.AmenityGroup{Title: title, Values: values})
	}

	return groups
}

func normalizeHighlights(raw any) []models.Highlight {
	highlights := make([]models.Highlight, 0)

	list, ok := raw.([]any)
	if !ok {
		return highlights
	}

	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		title := coerceString(m["title"])
		subtitle := coerceString(m["subtitle"])
		if title == "" && subtitle == "" {
			continue
		}
		highlights = append(highlights, models.Highlight{Title: title, Subtitle: subtitle})
	}

	return highlights
}

func normalizeImages(raw any) []models.Image {
	images := make([]models.Image, 0)

	list, ok := raw.([]any)
	if !ok {
		return images
	}

	for _, entry := range list {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		url := coerceString(m["url"])
		if url == "" {
			continue
		}
		images = append(images, models.Image{URL: url, Caption: coerceString(m["caption"])})
	}

	return images
}

func normalizeHostDetails(raw any) models.HostDetails {
	m, ok := raw.(map[string]any)
	if !ok {
		return models.HostDetails{}
	}
	return models.HostDetails{
		Name:        optionalString(m["name"]),
		Description: optionalString(m["description"]),
	}
}

// normalizePrice drops the whole price record when no numeric amount can
// be coerced; a price is never partially populated.
func normalizePrice(raw any) *models.Price {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	amount := coerceFloat(m["amount"])
	if amount == nil {
		return nil
	}
	return &models.Price{
		CurrencySymbol: optionalString(m["currencySymbol"]),
		Amount:         *amount,
		Raw:            optionalString(m["raw"]),
	}
}

// coerceString renders scalar values as trimmed text; anything else
// becomes the empty string.
func coerceString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64, float32, int, int64, bool:
		return strings.TrimSpace(fmt.Sprint(v))
	default:
		return ""
	}
}

// optionalString is coerceString with empty collapsing to nil.
func optionalString(value any) *string {
	s := coerceString(value)
	if s == "" {
		return nil
	}
	return &s
}

func coerceFloat(value any) *float64 {
	switch v := value.(type) {
	case float64:
		return &v
	case float32:
		f := float64(v)
		return &f
	case int:
		f := float64(v)
		return &f
	case int64:
		f := float64(v)
		return &f
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return &f
		}
		return nil
	default:
		return nil
	}
}

func coerceInt(value any) *int {
	switch v := value.(type) {
	case int:
		return &v
	case int64:
		i := int(v)
		return &i
	case float64:
		i := int(v)
		return &i
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return &i
		}
		return nil
	default:
		return nil
	}
}

func coerceBool(value any, defaultVal bool) bool {
	switch v := value.(type) {
	case nil:
		return defaultVal
	case bool:
		return v
	default:
		return true
	}
}
