package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int { return &i }
func floatPtr(f float64) *float64 { return &f }

func testRoom() *models.Room {
	return &models.Room{
		URL:            strPtr("https://www.airbnb.com/rooms/1"),
		PropertyType:   strPtr("Entire loft"),
		PersonCapacity: intPtr(4),
		Rating: models.Rating{
			GuestSatisfaction: floatPtr(4.97),
			ReviewsCount:      intPtr(36),
		},
		Amenities:  []models.AmenityGroup{},
		Highlights: []models.Highlight{},
		Images:     []models.Image{},
		Price: &models.Price{
			CurrencySymbol: strPtr("$"),
			Amount:         120.5,
			Raw:            strPtr("$120.50 night"),
		},
	}
}

func TestJSONWriter_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rooms.json")
	writer := NewJSONWriter(path, utils.NewLogger(false))

	require.NoError(t, writer.SaveRooms([]*models.Room{testRoom()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got []*models.Room
	require.NoError(t, json.Unmarshal(data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, testRoom(), got[0])
}

func TestJSONWriter_EmptyRunWritesEmptyArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	writer := NewJSONWriter(path, utils.NewLogger(false))

	require.NoError(t, writer.SaveRooms(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestJSONWriter_EmptyCollectionsMarshalAsArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.json")
	writer := NewJSONWriter(path, utils.NewLogger(false))

	require.NoError(t, writer.SaveRooms([]*models.Room{testRoom()}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amenities": []`)
	assert.Contains(t, string(data), `"images": []`)
	assert.NotContains(t, string(data), `"amenities": null`)
}

func TestCSVWriter_SummaryRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.csv")
	writer := NewCSVWriter(path, utils.NewLogger(false))

	priceless := &models.Room{URL: strPtr("https://www.airbnb.com/rooms/2")}
	require.NoError(t, writer.SaveRooms([]*models.Room{testRoom(), priceless}))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{
		"url", "property_type", "person_capacity", "currency",
		"nightly_price", "guest_satisfaction", "reviews_count",
	}, rows[0])
	assert.Equal(t, []string{
		"https://www.airbnb.com/rooms/1", "Entire loft", "4", "$",
		"120.50", "4.97", "36",
	}, rows[1])
	assert.Equal(t, []string{
		"https://www.airbnb.com/rooms/2", "", "", "", "", "", "",
	}, rows[2])
}
