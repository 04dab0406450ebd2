// Package entity defines the core domain entities for the news ingestion
// pipeline. It contains the typed records constructed from raw API response
// fragments (Article, Author, Source), the aggregate result type, and
// domain-specific errors.
package entity

import "time"

// Article represents a single validated news article from an API response.
// Every field is mandatory: an article fragment missing or mistyping any of
// them is rejected as a whole.
type Article struct {
	Title       string
	Description string
	URL         string
	URLToImage  string
	PublishedAt time.Time
	Content     string
}
