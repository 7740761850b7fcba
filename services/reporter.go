package services

import (
	"fmt"
	"sort"
	"strings"

	"airbnb-rooms-scraper/models"
)

// PrintInsightReport formats and prints the insight report to terminal
func PrintInsightReport(report *models.RoomInsights) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("AIRBNB ROOMS SCRAPE SUMMARY", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Rooms Scraped           : %d\n", report.TotalRooms)
	fmt.Printf("  Rooms With Price        : %d\n", report.WithPrice)
	fmt.Printf("  Average Price/Night     : %.2f\n", report.AveragePrice)
	fmt.Printf("  Minimum Price/Night     : %.2f\n", report.MinPrice)
	fmt.Printf("  Maximum Price/Night     : %.2f\n", report.MaxPrice)
	fmt.Printf("  Total Reviews Seen      : %d\n", report.TotalReviews)

	if report.MostExpensive != nil {
		fmt.Printf("\n MOST EXPENSIVE ROOM\n%s\n", thin)
		fmt.Printf("  Type  : %s\n", stringOr(report.MostExpensive.PropertyType, "unknown"))
		if report.MostExpensive.Price != nil {
			fmt.Printf("  Price : %s%.2f/night\n",
				stringOr(report.MostExpensive.Price.CurrencySymbol, ""),
				report.MostExpensive.Price.Amount)
		}
		fmt.Printf("  URL   : %s\n", stringOr(report.MostExpensive.URL, ""))
	}

	if len(report.AmenityGroups) > 0 {
		fmt.Printf("\n AMENITIES PER GROUP\n%s\n", thin)
		type groupCount struct {
			title string
			count int
		}
		var groups []groupCount
		for title, cnt := range report.AmenityGroups {
			groups = append(groups, groupCount{title, cnt})
		}
		sort.Slice(groups, func(i, j int) bool {
			return groups[i].count > groups[j].count
		})
		for _, g := range groups {
			bar := strings.Repeat("▓", g.count)
			fmt.Printf("  %-25s %3d  %s\n", g.title+":", g.count, bar)
		}
	}

	if len(report.TopRated) > 0 {
		fmt.Printf("\n TOP %d BY GUEST SATISFACTION\n%s\n", len(report.TopRated), thin)
		for i, room := range report.TopRated {
			label := stringOr(room.PropertyType, stringOr(room.URL, "unknown"))
			fmt.Printf("  %d. %-35s %.2f\n", i+1, truncate(label, 35), *room.Rating.GuestSatisfaction)
		}
	}

	fmt.Printf("\n%s\n\n", border)
}

func stringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
