// Package gallery holds the fixed artwork catalog and the cyclic selection
// a screen keeps over it.
package gallery

// Artwork is one catalog entry. Image is a resource reference resolved by an
// image source, never a path on disk.
type Artwork struct {
	Description string `json:"description" yaml:"description"`
	Title       string `json:"title" yaml:"title"`
	Creator     string `json:"creator" yaml:"creator"`
	CreatedAt   string `json:"created_at" yaml:"created_at"`
	Image       string `json:"image" yaml:"image"`
}
