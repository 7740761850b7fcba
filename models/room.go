package models

import "time"

// RawRoom is the unvalidated output of the room extractor. It is shaped
// like decoded JSON (nested map[string]any / []any) because any field may
// be absent or carry the wrong type; the normalizer owns all coercion.
type RawRoom map[string]any

// Room is the canonical, normalized payload. This is the only shape ever
// written to disk or persisted.
type Room struct {
	URL            *string        `json:"url"`
	PropertyType   *string        `json:"propertyType"`
	PersonCapacity *int           `json:"personCapacity"`
	Rating         Rating         `json:"rating"`
	Amenities      []AmenityGroup `json:"amenities"`
	Highlights     []Highlight    `json:"highlights"`
	Images         []Image        `json:"images"`
	HostDetails    HostDetails    `json:"hostDetails"`
	Price          *Price         `json:"price"`
}

// Rating holds the six sub-ratings plus the headline score and review
// count. Every field is nullable; the record itself is always present.
type Rating struct {
	Accuracy          *float64 `json:"accuracy"`
	Checking          *float64 `json:"checking"`
	Cleanliness       *float64 `json:"cleanliness"`
	Communication     *float64 `json:"communication"`
	Location          *float64 `json:"location"`
	Value             *float64 `json:"value"`
	GuestSatisfaction *float64 `json:"guestSatisfaction"`
	ReviewsCount      *int     `json:"reviewsCount"`
}

// AmenityGroup is one labeled block of amenities, e.g. "Bathroom".
type AmenityGroup struct {
	Title  string    `json:"title"`
	Values []Amenity `json:"values"`
}

// Amenity is a single amenity entry with its availability flag.
type Amenity struct {
	Title     string `json:"title"`
	Available bool   `json:"available"`
}

// Highlight is a short selling point, e.g. "Superhost: highly rated".
type Highlight struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Image is one listing photo reference.
type Image struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// HostDetails carries what little the page reveals about the host.
type HostDetails struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Price is the first nightly price found on the page. The whole record
// is nil when no parseable amount exists.
type Price struct {
	CurrencySymbol *string `json:"currencySymbol"`
	Amount         float64 `json:"amount"`
	Raw            *string `json:"raw"`
}

// RoomInsights holds computed analytics over a finished scrape run.
type RoomInsights struct {
	TotalRooms    int
	WithPrice     int
	AveragePrice  float64
	MinPrice      float64
	MaxPrice      float64
	MostExpensive *Room
	TopRated      []*Room
	TotalReviews  int
	AmenityGroups map[string]int
	GeneratedAt   time.Time
}
