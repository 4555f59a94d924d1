package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/util"
)

// LocalSource serves images from a directory on disk, letting an operator
// swap the bundled images without rebuilding.
type LocalSource struct {
	path string
}

func NewLocalSource(path string) (*LocalSource, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("image directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("image directory %s is not a directory", path)
	}
	return &LocalSource{path: path}, nil
}

func (l *LocalSource) Name() string {
	return "local:" + l.path
}

func (l *LocalSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(l.path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, l.path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}

// Files lists the supported images currently in the directory.
func (l *LocalSource) Files() (mapset.Set[string], error) {
	entries, err := os.ReadDir(l.path)
	if err != nil {
		return nil, fmt.Errorf("unable to read directory, %s, %w", l.path, err)
	}

	files := mapset.NewSet[string]()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if util.IsSupportedImage(entry.Name()) {
			files.Add(entry.Name())
		}
	}
	return files, nil
}

// Missing returns catalog images the directory does not provide. Those fall
// through to the next source in a chain.
func (l *LocalSource) Missing(c *gallery.Catalog) ([]string, error) {
	files, err := l.Files()
	if err != nil {
		return nil, err
	}

	var missing []string
	for _, a := range c.All() {
		if !files.Contains(a.Image) {
			missing = append(missing, a.Image)
		}
	}
	if len(missing) > 0 {
		slog.Info("local image directory is missing catalog images", "path", l.path, "count", len(missing), "names", missing)
	}
	return missing, nil
}
