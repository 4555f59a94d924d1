// Package assets resolves artwork image references to image bytes.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/aouyang1/artgallery/util"
)

var ErrNotFound = errors.New("image not found")

// Source opens artwork images by the name stored in the catalog.
type Source interface {
	Name() string
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// checkName rejects anything that is not a bare file name with a supported
// image extension.
func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) {
		return fmt.Errorf("%w: invalid image name %q", ErrNotFound, name)
	}
	if !util.IsSupportedImage(name) {
		return fmt.Errorf("%w: unsupported image %q", ErrNotFound, name)
	}
	return nil
}

// Chain tries each source in order and returns the first image found.
type Chain []Source

func (c Chain) Name() string {
	names := make([]string, len(c))
	for i, s := range c {
		names[i] = s.Name()
	}
	return "chain(" + strings.Join(names, ",") + ")"
}

func (c Chain) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	var firstErr error
	for _, s := range c {
		rc, err := s.Open(ctx, name)
		if err == nil {
			return rc, nil
		}
		if !errors.Is(err, ErrNotFound) {
			slog.Warn("image source failed", "source", s.Name(), "name", name, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// ReadAll opens name from src and reads it fully.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", name, err)
	}
	return data, nil
}
