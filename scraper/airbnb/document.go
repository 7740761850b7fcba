package airbnb

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ParseDocument builds a queryable document from raw page HTML.
func ParseDocument(htmlText string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(htmlText))
}

// textJoined returns the visible text of a selection with every text node
// trimmed and joined by sep. script/style/noscript subtrees are skipped;
// their content is never visible on the page.
func textJoined(sel *goquery.Selection, sep string) string {
	return strings.Join(textParts(sel), sep)
}

// textLines returns the visible text of a selection as one trimmed line
// per text node, preserving document order.
func textLines(sel *goquery.Selection) []string {
	return textParts(sel)
}

func textParts(sel *goquery.Selection) []string {
	var parts []string
	for _, node := range sel.Nodes {
		collectText(node, &parts)
	}
	return parts
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "noscript":
			return
		}
	}
	if n.Type == html.TextNode {
		if text := strings.Join(strings.Fields(n.Data), " "); text != "" {
			*parts = append(*parts, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
