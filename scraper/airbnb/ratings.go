package airbnb

import (
	"regexp"
	"strconv"
	"strings"

	"airbnb-rooms-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

var (
	decimalRegex = regexp.MustCompile(`\d\.\d{1,2}`)
	reviewsRegex = regexp.MustCompile(`(?i)(\d+)\s+review`)
)

// ratingFields is the canonical sub-rating order; an element feeds at most
// one field, the first of these its text mentions.
var ratingFields = []string{
	"accuracy",
	"checking",
	"cleanliness",
	"communication",
	"location",
	"value",
}

// extractRatings mines the headline rating, the review count and the six
// sub-ratings out of page text:
//
//	{"accuracy": 4.94, ..., "guestSatisfaction": 4.97, "reviewsCount": 36}
//
// Every field is best-effort and stays nil when no pattern matches.
func extractRatings(doc *goquery.Document, logger *utils.Logger) map[string]any {
	bodyText := textJoined(doc.Selection, " ")

	var overall any
	if match := decimalRegex.FindString(bodyText); match != "" {
		if v, err := strconv.ParseFloat(match, 64); err == nil {
			overall = v
		}
	}

	var reviewsCount any
	if match := reviewsRegex.FindStringSubmatch(bodyText); match != nil {
		if v, err := strconv.Atoi(match[1]); err == nil {
			reviewsCount = v
		}
	}

	subratings := extractSubratings(doc, logger)

	rating := make(map[string]any, len(ratingFields)+2)
	for _, field := range ratingFields {
		rating[field] = subratings[field]
	}
	// The page's single headline score doubles as guest satisfaction.
	rating["guestSatisfaction"] = overall
	rating["reviewsCount"] = reviewsCount
	return rating
}

// extractSubratings scans label/score rows like "Cleanliness 4.9". The
// first row that yields a parseable score for a field wins; later rows
// for the same field are ignored.
func extractSubratings(doc *goquery.Document, logger *utils.Logger) map[string]any {
	subratings := make(map[string]any, len(ratingFields))
	for _, field := range ratingFields {
		subratings[field] = nil
	}

	doc.Find("div, li").Each(func(_ int, row *goquery.Selection) {
		text := textJoined(row, " ")
		lower := strings.ToLower(text)
		for _, field := range ratingFields {
			if !strings.Contains(lower, field) {
				continue
			}
			if subratings[field] == nil {
				if match := decimalRegex.FindString(text); match != "" {
					if v, err := strconv.ParseFloat(match, 64); err == nil {
						subratings[field] = v
					} else {
						logger.Debug("Unable to parse sub-rating from %q", text)
					}
				}
			}
			break
		}
	})

	return subratings
}
