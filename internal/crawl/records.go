package crawl

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Record is one crawled page as delivered by the external crawler.
type Record struct {
	// URL is the page address, used as the audit identifier.
	URL string `json:"url"`

	// Content is the page's raw HTML markup.
	Content string `json:"content"`
}

// LoadRecords decodes a JSON array of crawl records from r. Records missing
// either the url or the content are dropped silently: a partially crawled
// batch should still be auditable, and the crawler already logs its own
// fetch failures.
func LoadRecords(r io.Reader) ([]Record, error) {
	var raw []Record
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode crawl records: %w", err)
	}

	records := make([]Record, 0, len(raw))
	for _, record := range raw {
		if record.URL == "" || record.Content == "" {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// Title extracts the page's <title> text, or "" when none is present.
// Used for display and run history only; the audit rules never depend on it.
func Title(markup string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(markup))

	inTitle := false
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tokenizer.TagName()
			inTitle = string(name) == "title"
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(tokenizer.Text()))
			}
		case html.EndTagToken:
			inTitle = false
		}
	}
}
