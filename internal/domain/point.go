package domain

// Point is a registered collection location.
type Point struct {
	ID        uint    `json:"id"`
	Image     string  `json:"image"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Whatsapp  string  `json:"whatsapp"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	City      string  `json:"city"`
	UF        string  `json:"uf"`
}

// PointDetail pairs a point with the titles of the items collected there.
// Items is always a sequence; "no items" is an empty slice, never a sentinel.
type PointDetail struct {
	Point Point    `json:"points"`
	Items []string `json:"items"`
}

// PointFilter selects points by exact city/uf match that collect at least one
// of the given items.
type PointFilter struct {
	City    string
	UF      string
	ItemIDs []uint
}
