package store

import (
	"context"
	"fmt"

	"github.com/aouyang1/artgallery/gallery"
)

// SeedCatalog writes the catalog into the store, overwriting what was there.
func (d *Database) SeedCatalog(ctx context.Context, c *gallery.Catalog) error {
	all := c.All()
	rows := make([]Artwork, len(all))
	for i, a := range all {
		rows[i] = Artwork{
			Position:    i + 1,
			Description: a.Description,
			Title:       a.Title,
			Creator:     a.Creator,
			CreatedAt:   a.CreatedAt,
			Image:       a.Image,
		}
	}
	return d.SeedArtworks(ctx, rows)
}

// LoadCatalog reads the stored rows back as a validated catalog.
func (d *Database) LoadCatalog(ctx context.Context) (*gallery.Catalog, error) {
	rows, err := d.GetArtworks(ctx)
	if err != nil {
		return nil, err
	}

	artworks := make([]gallery.Artwork, len(rows))
	for i, r := range rows {
		if r.Position != i+1 {
			return nil, fmt.Errorf("%w: gap at position %d", gallery.ErrInvalidCatalog, i+1)
		}
		artworks[i] = gallery.Artwork{
			Description: r.Description,
			Title:       r.Title,
			Creator:     r.Creator,
			CreatedAt:   r.CreatedAt,
			Image:       r.Image,
		}
	}
	return gallery.NewCatalog(artworks)
}
