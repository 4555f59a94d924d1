package store

// Artwork is a catalog row. Position is the 1-based selection the row is
// shown at.
type Artwork struct {
	Position    int    `json:"position"`
	Description string `json:"description"`
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	CreatedAt   string `json:"created_at"`
	Image       string `json:"image"`
}
