package api

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/aouyang1/artgallery/gallery"
)

var ErrScreenNotFound = errors.New("screen not found")

// ScreenRegistry keeps the live screens of the web host. Each page load
// activates a new screen; once capacity is reached the least recently used
// one is dropped and its page reloads into a fresh screen.
type ScreenRegistry struct {
	catalog *gallery.Catalog
	screens *lru.Cache[string, *gallery.Screen]

	transitions atomic.Int64
}

func NewScreenRegistry(catalog *gallery.Catalog, capacity int) (*ScreenRegistry, error) {
	screens, err := lru.NewWithEvict(capacity, func(id string, _ *gallery.Screen) {
		slog.Debug("evicted screen", "screen", id)
	})
	if err != nil {
		return nil, fmt.Errorf("create screen cache: %w", err)
	}
	return &ScreenRegistry{catalog: catalog, screens: screens}, nil
}

// Activate creates a screen at the first artwork and registers it.
func (r *ScreenRegistry) Activate() *gallery.Screen {
	s := gallery.NewScreen(r.catalog, gallery.WithObserver(func(index int, a gallery.Artwork) {
		r.transitions.Add(1)
		slog.Debug("screen transition", "selection", index, "title", a.Title)
	}))
	r.screens.Add(s.ID(), s)
	return s
}

func (r *ScreenRegistry) Get(id string) (*gallery.Screen, error) {
	s, ok := r.screens.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrScreenNotFound, id)
	}
	return s, nil
}

func (r *ScreenRegistry) Len() int {
	return r.screens.Len()
}

// Transitions counts Next and Previous clicks across all screens.
func (r *ScreenRegistry) Transitions() int64 {
	return r.transitions.Load()
}

func (r *ScreenRegistry) Catalog() *gallery.Catalog {
	return r.catalog
}
