package gallery

import (
	"sync"

	"github.com/google/uuid"
)

// Observer is called once per transition with the new selection. It runs
// while the screen is locked and must not call back into the screen.
type Observer func(index int, artwork Artwork)

// Screen is one activation of the gallery view. It owns the selection for
// as long as it lives; nothing about it is persisted.
type Screen struct {
	id      string
	catalog *Catalog

	mu        sync.Mutex
	selection int
	observer  Observer
}

type ScreenOption func(*Screen)

// WithObserver binds fn as the screen's re-render hook.
func WithObserver(fn Observer) ScreenOption {
	return func(s *Screen) {
		s.observer = fn
	}
}

// NewScreen activates a screen over catalog, starting at First.
func NewScreen(catalog *Catalog, opts ...ScreenOption) *Screen {
	s := &Screen{
		id:        uuid.NewString(),
		catalog:   catalog,
		selection: First,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Screen) ID() string {
	return s.id
}

func (s *Screen) Catalog() *Catalog {
	return s.catalog
}

// Current returns the selection and its artwork without transitioning.
func (s *Screen) Current() (int, Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection, s.catalog.RecordFor(s.selection)
}

// Next advances the selection, wrapping after the last artwork.
func (s *Screen) Next() (int, Artwork) {
	return s.transition(Next)
}

// Previous moves the selection back, wrapping before the first artwork.
func (s *Screen) Previous() (int, Artwork) {
	return s.transition(Previous)
}

func (s *Screen) transition(step func(int) int) (int, Artwork) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.selection = step(s.selection)
	artwork := s.catalog.RecordFor(s.selection)
	if s.observer != nil {
		s.observer(s.selection, artwork)
	}
	return s.selection, artwork
}
