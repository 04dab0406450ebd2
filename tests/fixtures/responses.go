// Package fixtures provides reusable raw API documents for tests. All
// fixtures are built as decoded JSON values (map[string]any, []any, float64)
// so they match exactly what encoding/json hands the parsing pipeline.
package fixtures

import (
	"encoding/json"
	"fmt"
)

// ValidSource returns a well-formed source fragment.
func ValidSource() map[string]any {
	return map[string]any{
		"id":   "reuters",
		"name": "Reuters",
	}
}

// NullIDSource returns a source fragment whose id is JSON null.
func NullIDSource() map[string]any {
	return map[string]any{
		"id":   nil,
		"name": "The Plainfield Gazette",
	}
}

// ValidArticle returns a well-formed article fragment. Overrides replace
// fields of the base fragment; a nil override value keeps the key with a
// JSON-null value, matching decoded input.
func ValidArticle(overrides map[string]any) map[string]any {
	fragment := map[string]any{
		"source":      ValidSource(),
		"author":      "Jane Doe",
		"title":       "Markets rally on upbeat outlook",
		"description": "Global indices climbed after the latest figures.",
		"url":         "https://news.example.com/markets-rally",
		"urlToImage":  "https://news.example.com/img/rally.jpg",
		"publishedAt": "2026-08-25T14:30:00Z",
		"content":     "Stocks rose broadly on Tuesday as investors digested the data.",
	}
	for key, value := range overrides {
		fragment[key] = value
	}
	return fragment
}

// HeadlinesResponse returns a success document wrapping the given article
// fragments. totalResults is encoded as float64, as encoding/json decodes
// JSON numbers.
func HeadlinesResponse(totalResults int, articles ...any) map[string]any {
	list := make([]any, len(articles))
	copy(list, articles)
	return map[string]any{
		"status":       "ok",
		"totalResults": float64(totalResults),
		"articles":     list,
	}
}

// ErrorResponse returns an API-reported error document.
func ErrorResponse(code, message string) map[string]any {
	return map[string]any{
		"status":  "error",
		"code":    code,
		"message": message,
	}
}

// FromJSON decodes a JSON literal into the generic value tree the pipeline
// consumes. It panics on malformed input since fixtures are compile-time
// constants in practice.
func FromJSON(raw string) any {
	var document any
	if err := json.Unmarshal([]byte(raw), &document); err != nil {
		panic(fmt.Sprintf("fixtures: bad JSON literal: %v", err))
	}
	return document
}
