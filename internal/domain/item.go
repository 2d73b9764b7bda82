package domain

// Item is a waste/material category eligible for collection at a point.
// The catalog is reference data, seeded at startup and read-only afterwards.
type Item struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}
