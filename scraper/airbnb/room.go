package airbnb

import (
	"strconv"
	"strings"
	"unicode"

	"airbnb-rooms-scraper/models"
	"airbnb-rooms-scraper/utils"

	"github.com/PuerkitoBio/goquery"
)

var currencySymbols = []string{"$", "€", "£", "₹", "¥"}

var highlightKeywords = []string{"superhost", "top", "great location"}

// parseRoom runs every field parser over the document and composes one
// raw record. Each parser is independently best-effort; a miss leaves its
// field nil or empty, never an error.
func parseRoom(url string, doc *goquery.Document, logger *utils.Logger) models.RawRoom {
	return models.RawRoom{
		"url":            url,
		"propertyType":   parsePropertyType(doc),
		"personCapacity": parsePersonCapacity(doc),
		"rating":         extractRatings(doc, logger),
		"amenities":      extractAmenities(doc),
		"highlights":     parseHighlights(doc),
		"images":         parseImages(doc),
		"hostDetails":    parseHostDetails(doc),
		"price":          parsePrice(doc),
	}
}

// parsePropertyType prefers the page title's text before the first "-",
// falling back to the first h1/h2 heading.
func parsePropertyType(doc *goquery.Document) any {
	title := doc.Find("title").First()
	if title.Length() > 0 {
		text := title.Text()
		if strings.Contains(text, "-") {
			if head := strings.TrimSpace(strings.SplitN(text, "-", 2)[0]); head != "" {
				return head
			}
		}
	}

	heading := doc.Find("h1, h2").First()
	if heading.Length() > 0 {
		if text := textJoined(heading, " "); text != "" {
			return text
		}
	}

	return nil
}

// parsePersonCapacity looks for text like "4 guests" or "up to 2 guests".
func parsePersonCapacity(doc *goquery.Document) any {
	tokens := strings.Fields(textJoined(doc.Selection, " "))
	for i, token := range tokens {
		if !isDigits(token) || i+1 >= len(tokens) {
			continue
		}
		if strings.Contains(strings.ToLower(tokens[i+1]), "guest") {
			if n, ok := atoiOK(token); ok {
				return n
			}
		}
	}
	return nil
}

// parseHighlights collects short selling-point lines near keywords like
// "Superhost" and splits them into title/subtitle on the first colon.
func parseHighlights(doc *goquery.Document) []any {
	highlights := make([]any, 0)

	for _, line := range textLines(doc.Selection) {
		lower := strings.ToLower(line)
		matched := false
		for _, keyword := range highlightKeywords {
			if strings.Contains(lower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		title, subtitle := line, ""
		if idx := strings.Index(line, ":"); idx >= 0 {
			title = strings.TrimSpace(line[:idx])
			subtitle = strings.TrimSpace(line[idx+1:])
		}
		highlights = append(highlights, map[string]any{"title": title, "subtitle": subtitle})
	}

	return highlights
}

// parseImages returns every img with a source, preferring src over the
// lazy-load data-src attribute. Caption comes from alt text.
func parseImages(doc *goquery.Document) []any {
	images := make([]any, 0)
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		src, ok := img.Attr("src")
		if !ok || src == "" {
			src, _ = img.Attr("data-src")
		}
		if src == "" {
			return
		}
		caption, _ := img.Attr("alt")
		images = append(images, map[string]any{"url": src, "caption": caption})
	})
	return images
}

// parseHostDetails locates a "Hosted by" heading and mines the host name
// and the first paragraph of the surrounding container.
func parseHostDetails(doc *goquery.Document) map[string]any {
	var hostSection *goquery.Selection
	doc.Find("h2, h3").EachWithBreak(func(_ int, heading *goquery.Selection) bool {
		if strings.Contains(strings.ToLower(textJoined(heading, " ")), "hosted by") {
			hostSection = heading.Parent()
			return false
		}
		return true
	})

	var name any
	var description any

	if hostSection != nil && hostSection.Length() > 0 {
		headingText := textJoined(hostSection, " ")
		if _, after, found := strings.Cut(headingText, "Hosted by"); found {
			if fields := strings.Fields(after); len(fields) > 0 {
				name = fields[0]
			}
		}

		paragraph := hostSection.Find("p").First()
		if paragraph.Length() > 0 {
			if text := textJoined(paragraph, " "); text != "" {
				description = text
			}
		}
	}

	return map[string]any{"name": name, "description": description}
}

// parsePrice scans the page text for the first currency symbol followed by
// a parseable amount. Commas are stripped; at most 20 characters after the
// symbol are considered. Symbols that yield no number are skipped.
func parsePrice(doc *goquery.Document) any {
	bodyText := textJoined(doc.Selection, " ")

	for _, symbol := range currencySymbols {
		idx := strings.Index(bodyText, symbol)
		if idx < 0 {
			continue
		}

		snippet := bodyText[idx:]
		if runes := []rune(snippet); len(runes) > 20 {
			snippet = string(runes[:20])
		}

		var digits strings.Builder
		for _, ch := range snippet[len(symbol):] {
			if unicode.IsDigit(ch) || ch == ',' || ch == '.' {
				digits.WriteRune(ch)
				continue
			}
			break
		}

		amountStr := strings.ReplaceAll(digits.String(), ",", "")
		amount, ok := atofOK(amountStr)
		if !ok {
			continue
		}

		return map[string]any{
			"currencySymbol": symbol,
			"amount":         amount,
			"raw":            strings.TrimSpace(snippet),
		}
	}

	return nil
}

func atoiOK(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}

func atofOK(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, ch := range s {
		if !unicode.IsDigit(ch) {
			return false
		}
	}
	return true
}
