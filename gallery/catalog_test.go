package gallery

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func testArtworks() []Artwork {
	return []Artwork{
		{Title: "One", Creator: "A", CreatedAt: "1901", Description: "first", Image: "one.png"},
		{Title: "Two", Creator: "B", CreatedAt: "1902", Description: "second", Image: "two.jpg"},
		{Title: "Three", Creator: "C", CreatedAt: "1903", Description: "third", Image: "three.svg"},
		{Title: "Four", Creator: "D", CreatedAt: "1904", Description: "fourth", Image: "four.jpeg"},
		{Title: "Five", Creator: "E", CreatedAt: "1905", Description: "fifth", Image: "five.PNG"},
	}
}

func TestNewCatalog(t *testing.T) {
	c, err := NewCatalog(testArtworks())
	require.NoError(t, err)
	require.Equal(t, Size, c.Len())
	require.Equal(t, "One", c.RecordFor(1).Title)
	require.Equal(t, "Five", c.RecordFor(5).Title)

	all := c.All()
	all[0].Title = "changed"
	require.Equal(t, "One", c.RecordFor(1).Title)
}

func TestNewCatalogRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func([]Artwork) []Artwork
		msg    string
	}{
		{"too few", func(a []Artwork) []Artwork { return a[:4] }, "need 5 artworks, got 4"},
		{"too many", func(a []Artwork) []Artwork { return append(a, a[0]) }, "need 5 artworks, got 6"},
		{"no title", func(a []Artwork) []Artwork { a[2].Title = " "; return a }, "artwork 3 has no title"},
		{"no creator", func(a []Artwork) []Artwork { a[1].Creator = ""; return a }, "artwork 2 has no creator"},
		{"bad image", func(a []Artwork) []Artwork { a[4].Image = "five.gif"; return a }, "unsupported image"},
		{"duplicate", func(a []Artwork) []Artwork { a[3].Title = "One"; return a }, "duplicate title"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCatalog(tt.mutate(testArtworks()))
			require.ErrorIs(t, err, ErrInvalidCatalog)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLookup(t *testing.T) {
	c, err := NewCatalog(testArtworks())
	require.NoError(t, err)

	for _, i := range []int{0, 6, -1} {
		_, ok := c.Lookup(i)
		require.False(t, ok, i)
		require.Panics(t, func() { c.RecordFor(i) })
	}
	a, ok := c.Lookup(3)
	require.True(t, ok)
	require.Equal(t, "Three", a.Title)
}

func TestLoadBundle(t *testing.T) {
	c, err := LoadBundle()
	require.NoError(t, err)

	seen := map[string]bool{}
	images := BundleImages()
	for i := First; i <= Size; i++ {
		a := c.RecordFor(i)
		require.NotEmpty(t, a.Title)
		require.NotEmpty(t, a.Creator)
		require.NotEmpty(t, a.CreatedAt)
		require.NotEmpty(t, a.Description)
		require.False(t, seen[a.Title], "duplicate %q", a.Title)
		seen[a.Title] = true

		f, err := images.Open(a.Image)
		require.NoError(t, err, a.Image)
		require.NoError(t, f.Close())
	}
}

func TestParseCatalogUnknownField(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader("artworks:\n  - title: x\n    painter: y\n"))
	require.ErrorIs(t, err, ErrInvalidCatalog)
}
