// Package faq holds the help-center catalog and its category/search filter.
package faq

import (
	"encoding/json"
	"strings"
)

// AllCategories is the pseudo-category that disables category filtering.
const AllCategories = "All"

// Answer is a tagged variant: plain text participates in substring search,
// rich structured content does not (only category filtering applies to it).
type Answer struct {
	Text string          `json:"text,omitempty"`
	Rich json.RawMessage `json:"rich,omitempty"`
}

// TextAnswer wraps a plain-text answer body.
func TextAnswer(text string) Answer {
	return Answer{Text: text}
}

// RichAnswer wraps an opaque structured answer payload.
func RichAnswer(payload json.RawMessage) Answer {
	return Answer{Rich: payload}
}

// IsText reports whether the answer is the searchable plain-text variant.
func (a Answer) IsText() bool {
	return a.Rich == nil
}

// Item is a single FAQ entry.
type Item struct {
	ID       int    `json:"id"`
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   Answer `json:"answer"`
}

// Filter returns the items passing both the category and the query predicate,
// preserving source order. An item matches the query when the question or a
// plain-text answer contains it case-insensitively; rich answers pass the
// text predicate unconditionally when their question does not match.
func Filter(items []Item, category, query string) []Item {
	query = strings.ToLower(query)

	var out []Item
	for _, item := range items {
		if category != AllCategories && category != "" && item.Category != category {
			continue
		}
		if query != "" && !matchesQuery(item, query) {
			continue
		}
		out = append(out, item)
	}
	return out
}

func matchesQuery(item Item, lowered string) bool {
	if strings.Contains(strings.ToLower(item.Question), lowered) {
		return true
	}
	return item.Answer.IsText() && strings.Contains(strings.ToLower(item.Answer.Text), lowered)
}

// Categories returns "All" followed by the distinct categories in first-seen order.
func Categories(items []Item) []string {
	out := []string{AllCategories}
	seen := map[string]bool{}
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	return out
}

// Segment is a run of text with a flag marking it as a query match.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match,omitempty"`
}

// Highlight splits text into segments wrapping every case-insensitive,
// non-overlapping occurrence of query, scanning left to right. An empty query
// yields a single unmarked segment.
func Highlight(text, query string) []Segment {
	if query == "" || text == "" {
		return []Segment{{Text: text}}
	}

	loweredText := strings.ToLower(text)
	loweredQuery := strings.ToLower(query)

	var segments []Segment
	for start := 0; start < len(text); {
		idx := strings.Index(loweredText[start:], loweredQuery)
		if idx < 0 {
			segments = append(segments, Segment{Text: text[start:]})
			break
		}
		idx += start
		if idx > start {
			segments = append(segments, Segment{Text: text[start:idx]})
		}
		segments = append(segments, Segment{Text: text[idx : idx+len(query)], Match: true})
		start = idx + len(query)
		if start == len(text) {
			break
		}
	}
	return segments
}
