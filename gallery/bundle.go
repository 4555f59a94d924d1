package gallery

import (
	"embed"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

//go:embed bundle/catalog.yaml bundle/images/*
var bundleFS embed.FS

const (
	bundleCatalog = "bundle/catalog.yaml"
	bundleImages  = "bundle/images"
)

type bundleFile struct {
	Artworks []Artwork `yaml:"artworks"`
}

// LoadBundle reads the catalog compiled into the binary.
func LoadBundle() (*Catalog, error) {
	f, err := bundleFS.Open(bundleCatalog)
	if err != nil {
		return nil, fmt.Errorf("open catalog bundle: %w", err)
	}
	defer f.Close()

	return ParseCatalog(f)
}

// ParseCatalog decodes a YAML catalog and validates it.
func ParseCatalog(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var b bundleFile
	if err := dec.Decode(&b); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrInvalidCatalog, err)
	}
	return NewCatalog(b.Artworks)
}

// BundleImages exposes the images shipped with the catalog, keyed by the
// artworks' Image field.
func BundleImages() fs.FS {
	images, err := fs.Sub(bundleFS, bundleImages)
	if err != nil {
		// bundleImages is a constant path inside the embed pattern
		panic(err)
	}
	return images
}
