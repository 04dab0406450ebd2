package entity

// Author represents the writer of an article, derived from a single
// "first last" display string. When an Author exists it always carries
// exactly two non-empty name components.
type Author struct {
	FirstName string
	LastName  string
}
