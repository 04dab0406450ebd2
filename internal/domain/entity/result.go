package entity

// ArticleRecord ties a validated Article to its best-effort Source and
// Author. Source and Author may be nil without invalidating the record;
// the Article itself is always present.
type ArticleRecord struct {
	Source  *Source
	Author  *Author
	Article Article
}

// Metadata carries the response-level counters reported by the API.
type Metadata struct {
	// TotalResults is the total number of results the API claims to have,
	// which may exceed the number of records that survive validation.
	TotalResults int
}

// APIResult is the immutable aggregate produced from one API response.
// It is created once at parse time and never mutated afterwards.
type APIResult struct {
	metadata Metadata
	records  []ArticleRecord
}

// NewAPIResult builds an APIResult from metadata and assembled records.
// The record slice is copied so later mutation by the caller cannot reach
// into the result.
func NewAPIResult(meta Metadata, records []ArticleRecord) *APIResult {
	copied := make([]ArticleRecord, len(records))
	copy(copied, records)
	return &APIResult{metadata: meta, records: copied}
}

// Metadata returns the response-level metadata.
func (r *APIResult) Metadata() Metadata {
	return r.metadata
}

// Records returns the assembled records in their original response order.
// The returned slice is a copy; callers cannot mutate the result through it.
func (r *APIResult) Records() []ArticleRecord {
	out := make([]ArticleRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Len returns the number of records that survived validation.
func (r *APIResult) Len() int {
	return len(r.records)
}
