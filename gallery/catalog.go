package gallery

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aouyang1/artgallery/util"
)

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the ordered, read-only set of artworks addressed by 1-based
// selection.
type Catalog struct {
	records [Size]Artwork
}

// NewCatalog validates records and copies them into a catalog. records[0] is
// selection 1.
func NewCatalog(records []Artwork) (*Catalog, error) {
	if len(records) != Size {
		return nil, fmt.Errorf("%w: need %d artworks, got %d", ErrInvalidCatalog, Size, len(records))
	}

	titles := mapset.NewSet[string]()
	c := &Catalog{}
	for i, a := range records {
		index := i + 1
		if strings.TrimSpace(a.Title) == "" {
			return nil, fmt.Errorf("%w: artwork %d has no title", ErrInvalidCatalog, index)
		}
		if strings.TrimSpace(a.Creator) == "" {
			return nil, fmt.Errorf("%w: artwork %d has no creator", ErrInvalidCatalog, index)
		}
		if !util.IsSupportedImage(a.Image) {
			return nil, fmt.Errorf("%w: artwork %d has unsupported image %q", ErrInvalidCatalog, index, a.Image)
		}
		if !titles.Add(a.Title) {
			return nil, fmt.Errorf("%w: duplicate title %q", ErrInvalidCatalog, a.Title)
		}
		c.records[i] = a
	}
	return c, nil
}

// RecordFor returns the artwork at index. Indexes outside 1..Size are never
// produced by Next or Previous; passing one panics.
func (c *Catalog) RecordFor(index int) Artwork {
	a, ok := c.Lookup(index)
	if !ok {
		panic(fmt.Sprintf("gallery: selection %d out of range [%d,%d]", index, First, Size))
	}
	return a
}

// Lookup is RecordFor for untrusted indexes.
func (c *Catalog) Lookup(index int) (Artwork, bool) {
	if !Valid(index) {
		return Artwork{}, false
	}
	return c.records[index-1], true
}

func (c *Catalog) Len() int {
	return len(c.records)
}

// All returns a copy of the artworks in selection order.
func (c *Catalog) All() []Artwork {
	out := make([]Artwork, len(c.records))
	copy(out, c.records[:])
	return out
}
