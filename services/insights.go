package services

import (
	"sort"
	"time"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"
)

// InsightService computes analytics from the normalized dataset
type InsightService struct {
	logger *utils.Logger
}

// NewInsightService creates a new InsightService
func NewInsightService(logger *utils.Logger) *InsightService {
	return &InsightService{logger: logger}
}

// Generate computes run-level insights from a slice of normalized rooms
func (s *InsightService) Generate(rooms []*models.Room) *models.RoomInsights {
	report := &models.RoomInsights{
		AmenityGroups: make(map[string]int),
		GeneratedAt:   time.Now(),
	}

	if len(rooms) == 0 {
		s.logger.Warn("No rooms to generate insights from")
		return report
	}

	var totalPrice float64

	for _, room := range rooms {
		report.TotalRooms++

		if room.Price != nil {
			price := room.Price.Amount
			report.WithPrice++
			totalPrice += price
			if price < report.MinPrice || report.MinPrice == 0 {
				report.MinPrice = price
			}
			if price > report.MaxPrice {
				report.MaxPrice = price
				report.MostExpensive = room
			}
		}

		if room.Rating.ReviewsCount != nil {
			report.TotalReviews += *room.Rating.ReviewsCount
		}

		for _, group := range room.Amenities {
			report.AmenityGroups[group.Title] += len(group.Values)
		}
	}

	if report.WithPrice > 0 {
		report.AveragePrice = totalPrice / float64(report.WithPrice)
	}

	// Top 5 by guest satisfaction
	rated := make([]*models.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Rating.GuestSatisfaction != nil {
			rated = append(rated, room)
		}
	}
	sort.Slice(rated, func(i, j int) bool {
		return *rated[i].Rating.GuestSatisfaction > *rated[j].Rating.GuestSatisfaction
	})
	maxTop := 5
	if len(rated) < maxTop {
		maxTop = len(rated)
	}
	report.TopRated = rated[:maxTop]

	return report
}
