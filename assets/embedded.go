package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/aouyang1/artgallery/gallery"
)

// FSSource serves images from a file system, by default the one compiled
// into the binary with the catalog.
type FSSource struct {
	name  string
	files fs.FS
}

func NewEmbeddedSource() *FSSource {
	return &FSSource{name: "embedded", files: gallery.BundleImages()}
}

func NewFSSource(name string, files fs.FS) *FSSource {
	return &FSSource{name: name, files: files}
}

func (s *FSSource) Name() string {
	return s.name
}

func (s *FSSource) Open(_ context.Context, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	f, err := s.files.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s in %s", ErrNotFound, name, s.name)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	return f, nil
}
