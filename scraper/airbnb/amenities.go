package airbnb

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var unavailableHints = []string{"not available", "unavailable", "not included"}

// extractAmenities mines grouped amenity lists out of the document:
//
//	[{"title": "Bathroom", "values": [{"title": "Hair dryer", "available": true}, ...]}, ...]
//
// Returns an empty list when nothing matches; extraction never fails.
func extractAmenities(doc *goquery.Document) []any {
	sections := findAmenitySections(doc)

	type group struct {
		title  string
		values []any
	}
	var grouped []group

	for _, section := range sections {
		title := "Amenities"
		// Nearest heading labels the group.
		for _, tag := range []string{"h2", "h3", "h4"} {
			heading := section.Find(tag).First()
			if heading.Length() > 0 {
				if text := textJoined(heading, " "); text != "" {
					title = text
				}
				break
			}
		}
		if values := parseAmenityList(section); len(values) > 0 {
			grouped = append(grouped, group{title: title, values: values})
		}
	}

	// Merge groups sharing a title, keeping first-encounter order.
	merged := make([]any, 0)
	index := make(map[string]int)
	for _, g := range grouped {
		if i, ok := index[g.title]; ok {
			entry := merged[i].(map[string]any)
			entry["values"] = append(entry["values"].([]any), g.values...)
			continue
		}
		index[g.title] = len(merged)
		merged = append(merged, map[string]any{"title": g.title, "values": g.values})
	}
	return merged
}

// findAmenitySections locates candidate amenity containers: the enclosing
// section (or parent) of any h2/h3 mentioning amenities, falling back to
// any section whose text mentions them at all.
func findAmenitySections(doc *goquery.Document) []*goquery.Selection {
	var sections []*goquery.Selection
	seen := make(map[*html.Node]bool)

	doc.Find("h2, h3").Each(func(_ int, heading *goquery.Selection) {
		text := strings.ToLower(textJoined(heading, " "))
		if !strings.Contains(text, "amenities") && !strings.Contains(text, "what this place offers") {
			return
		}
		section := heading.Closest("section")
		if section.Length() == 0 {
			section = heading.Parent()
		}
		if section.Length() == 0 {
			return
		}
		if node := section.Get(0); !seen[node] {
			seen[node] = true
			sections = append(sections, section)
		}
	})

	if len(sections) == 0 {
		doc.Find("section").Each(func(_ int, section *goquery.Selection) {
			if strings.Contains(strings.ToLower(textJoined(section, " ")), "amenities") {
				sections = append(sections, section)
			}
		})
	}

	return sections
}

// parseAmenityList treats each list item in the section as one amenity.
// Items whose text mentions unavailability are flagged available=false.
func parseAmenityList(section *goquery.Selection) []any {
	var values []any
	section.Find("li").Each(func(_ int, li *goquery.Selection) {
		title := textJoined(li, " ")
		if title == "" {
			return
		}
		lower := strings.ToLower(title)
		available := true
		for _, hint := range unavailableHints {
			if strings.Contains(lower, hint) {
				available = false
				break
			}
		}
		values = append(values, map[string]any{"title": title, "available": available})
	})
	return values
}
