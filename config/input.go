package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// LoadURLs reads the input JSON file and flattens it into an ordered list
// of non-empty URL strings. Accepted shapes:
//
//	["https://...", ...]
//	[{"startUrl": "https://..."}, ...]
//	[{"url": "https://..."}, ...]
//	[{"startUrls": ["https://...", ...]}, ...]
//	{"startUrls": ["https://...", ...]}
//	{"urls": ["https://...", ...]}
//
// An unreadable file, an unsupported structure, or a result with no valid
// URL is a hard failure for the whole run.
func LoadURLs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("input file not readable: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("input file is not valid JSON: %w", err)
	}

	var urls []string

	switch v := raw.(type) {
	case map[string]any:
		candidates, ok := v["startUrls"].([]any)
		if !ok {
			candidates, _ = v["urls"].([]any)
		}
		urls = appendStrings(urls, candidates)
	case []any:
		for _, item := range v {
			switch entry := item.(type) {
			case string:
				urls = append(urls, entry)
			case map[string]any:
				if u, ok := entry["startUrl"].(string); ok && u != "" {
					urls = append(urls, u)
				} else if u, ok := entry["url"].(string); ok && u != "" {
					urls = append(urls, u)
				} else if nested, ok := entry["startUrls"].([]any); ok {
					urls = appendStrings(urls, nested)
				}
			}
		}
	default:
		return nil, fmt.Errorf("unsupported input JSON structure for URLs")
	}

	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if strings.TrimSpace(u) != "" {
			cleaned = append(cleaned, u)
		}
	}

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("no URLs found in input file %s", path)
	}
	return cleaned, nil
}

func appendStrings(urls []string, items []any) []string {
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}
