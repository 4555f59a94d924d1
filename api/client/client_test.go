package client_test

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aouyang1/artgallery/api"
	"github.com/aouyang1/artgallery/api/client"
	"github.com/aouyang1/artgallery/assets"
	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/store"
)

func newClient(t *testing.T) *client.GalleryClient {
	t.Helper()
	catalog, err := gallery.LoadBundle()
	require.NoError(t, err)
	screens, err := api.NewScreenRegistry(catalog, 4)
	require.NoError(t, err)
	db, err := store.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.SeedCatalog(context.Background(), catalog))
	ws := api.NewWebServer(db, screens, assets.NewEmbeddedSource(), gin.TestMode)

	srv := httptest.NewServer(ws.Handler())
	t.Cleanup(srv.Close)
	return client.NewGalleryClient(srv.URL + "/")
}

func TestClientWalk(t *testing.T) {
	ctx := context.Background()
	gc := newClient(t)

	list, err := gc.GetArtworks(ctx)
	require.NoError(t, err)
	require.Len(t, list.Artworks, gallery.Size)

	screen, err := gc.NewScreen(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, screen.View.Selection)

	for range 4 {
		screen, err = gc.Next(ctx, screen.ScreenID)
		require.NoError(t, err)
	}
	require.Equal(t, 5, screen.View.Selection)
	require.Equal(t, list.Artworks[4].Title, screen.View.Title)

	screen, err = gc.Next(ctx, screen.ScreenID)
	require.NoError(t, err)
	require.Equal(t, 1, screen.View.Selection)

	screen, err = gc.Previous(ctx, screen.ScreenID)
	require.NoError(t, err)
	require.Equal(t, 5, screen.View.Selection)

	got, err := gc.GetScreen(ctx, screen.ScreenID)
	require.NoError(t, err)
	require.Equal(t, 5, got.View.Selection)
}

func TestClientServerError(t *testing.T) {
	gc := newClient(t)
	_, err := gc.Next(context.Background(), "missing")
	require.ErrorContains(t, err, "server error: screen not found")
}
