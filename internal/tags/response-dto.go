package tags

// LabelResponse is the public shape of both tags and amenities
type LabelResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
