package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aouyang1/artgallery/gallery"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := NewDatabase(filepath.Join(t.TempDir(), "nested", "gallery.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSeedAndLoadCatalog(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	bundle, err := gallery.LoadBundle()
	require.NoError(t, err)
	require.NoError(t, db.SeedCatalog(ctx, bundle))

	count, err := db.GetArtworkCount(ctx)
	require.NoError(t, err)
	require.Equal(t, gallery.Size, count)

	loaded, err := db.LoadCatalog(ctx)
	require.NoError(t, err)
	require.Equal(t, bundle.All(), loaded.All())

	a, err := db.GetArtwork(ctx, 3)
	require.NoError(t, err)
	require.Equal(t, 3, a.Position)
	require.Equal(t, bundle.RecordFor(3).Title, a.Title)
}

func TestSeedIsIdempotentAndAuthoritative(t *testing.T) {
	ctx := context.Background()
	db := newTestDatabase(t)

	rows := []Artwork{
		{Title: "a", Creator: "x", Image: "a.png"},
		{Title: "b", Creator: "y", Image: "b.png"},
		{Title: "c", Creator: "z", Image: "c.png"},
	}
	require.NoError(t, db.SeedArtworks(ctx, rows))
	rows[1].Title = "b2"
	require.NoError(t, db.SeedArtworks(ctx, rows[:2]))

	got, err := db.GetArtworks(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "b2", got[1].Title)
	require.Equal(t, 2, got[1].Position)
}

func TestGetArtworkNotFound(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.GetArtwork(context.Background(), 9)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCatalogEmpty(t *testing.T) {
	db := newTestDatabase(t)
	_, err := db.LoadCatalog(context.Background())
	require.ErrorIs(t, err, gallery.ErrInvalidCatalog)
}
