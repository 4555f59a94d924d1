package main

import (
	"bytes"
	"context"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/aouyang1/artgallery/api"
	"github.com/aouyang1/artgallery/assets"
	"github.com/aouyang1/artgallery/config"
	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/store"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvPrefix+"_CONFIG", "")

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testServer(t *testing.T) string {
	t.Helper()
	catalog, err := gallery.LoadBundle()
	require.NoError(t, err)
	screens, err := api.NewScreenRegistry(catalog, 4)
	require.NoError(t, err)
	db, err := store.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.SeedCatalog(context.Background(), catalog))
	srv := httptest.NewServer(api.NewWebServer(db, screens, assets.NewEmbeddedSource(), gin.TestMode).Handler())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestCatalogFromBundle(t *testing.T) {
	out, err := run(t, "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, gallery.Size)
	require.Equal(t, "1. The Starry Night by Vincent van Gogh (1889)", lines[0])
	require.Equal(t, "5. Water Lilies by Claude Monet (1906)", lines[4])
}

func TestCatalogFromServer(t *testing.T) {
	local, err := run(t, "catalog")
	require.NoError(t, err)

	remote, err := run(t, "catalog", "--server", testServer(t))
	require.NoError(t, err)
	require.Equal(t, local, remote)
}

func TestWalk(t *testing.T) {
	url := testServer(t)

	out, err := run(t, "walk", "--server", url, "--steps", "5")
	require.NoError(t, err)
	var selections []string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		selections = append(selections, strings.Fields(line)[0])
	}
	require.Equal(t, []string{"1", "2", "3", "4", "5", "1"}, selections)

	out, err = run(t, "walk", "--server", url, "--steps", "2", "--direction", "previous")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "1 The Starry Night\n5 Water Lilies\n4 "), out)
}

func TestWalkRejectsDirection(t *testing.T) {
	_, err := run(t, "walk", "--direction", "sideways")
	require.ErrorContains(t, err, "direction must be next or previous")
}

func TestImageSourceChain(t *testing.T) {
	dir := t.TempDir()
	catalog, err := gallery.LoadBundle()
	require.NoError(t, err)

	cfg := config.Config{RootPath: dir}
	cfg.Images.Dir = dir
	src, err := imageSource(context.Background(), cfg, catalog)
	require.NoError(t, err)
	require.Equal(t, "chain(local:"+dir+",embedded)", src.Name())

	data, err := assets.ReadAll(context.Background(), src, "art_1.svg")
	require.NoError(t, err)
	require.NotEmpty(t, data)

	cfg.Images.Dir = filepath.Join(dir, "absent")
	_, err = imageSource(context.Background(), cfg, catalog)
	require.Error(t, err)
}
