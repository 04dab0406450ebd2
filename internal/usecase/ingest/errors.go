// Package ingest converts decoded news-aggregation API responses into
// validated, strongly typed record sets. It implements the response
// classifier, the article assembler, and the per-field record builders,
// isolating per-item failures so one malformed article never aborts a batch.
package ingest

import "fmt"

// ResponseError is the single fatal error of the pipeline. It is returned
// when the top-level document is an API-reported error or matches no known
// shape; per-item problems never surface as a ResponseError.
type ResponseError struct {
	// Code and Message carry the upstream error verbatim for API-reported
	// errors. Both are empty for unrecognized shapes.
	Code    string
	Message string

	// Raw holds the offending payload for unrecognized shapes so callers
	// can log it for diagnostics. It is nil for API-reported errors.
	Raw any
}

// Error returns the upstream code and message for reported errors, or a
// diagnostic dump of the payload for unrecognized shapes.
func (e *ResponseError) Error() string {
	if e.Code != "" || e.Message != "" {
		return fmt.Sprintf("api reported error: code=%s message=%s", e.Code, e.Message)
	}
	return fmt.Sprintf("unrecognized response shape: %v", e.Raw)
}

// Unrecognized reports whether the error came from the unrecognized-shape
// branch rather than an API-reported error.
func (e *ResponseError) Unrecognized() bool {
	return e.Code == "" && e.Message == ""
}

func newAPIError(code, message any) *ResponseError {
	return &ResponseError{
		Code:    fmt.Sprint(code),
		Message: fmt.Sprint(message),
	}
}

func newUnrecognizedError(raw any) *ResponseError {
	return &ResponseError{Raw: raw}
}
