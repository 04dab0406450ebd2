package entity

// Source identifies the publication an article came from.
// ID is optional (the upstream API reports null for outlets without a
// registered identifier); Name is always present when a Source exists.
type Source struct {
	ID   *string
	Name string
}
