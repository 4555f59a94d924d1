// Package render derives what a gallery screen shows from its selection and
// writes it out for the web and terminal hosts.
package render

//go:generate templ generate

import (
	"fmt"

	"github.com/aouyang1/artgallery/gallery"
)

type Action string

const (
	ActionPrevious Action = "previous"
	ActionNext     Action = "next"
)

// Control is a navigation button. Both controls are always enabled.
type Control struct {
	Label   string `json:"label"`
	Action  Action `json:"action"`
	Enabled bool   `json:"enabled"`
}

// View is everything a screen displays for one selection.
type View struct {
	Selection int       `json:"selection"`
	Total     int       `json:"total"`
	Image     string    `json:"image"`
	ImageAlt  string    `json:"image_alt"`
	Title     string    `json:"title"`
	Creator   string    `json:"creator"`
	CreatedAt string    `json:"created_at"`
	Controls  []Control `json:"controls"`
}

// Build is a pure mapping from a selection and its artwork to a View.
func Build(selection int, a gallery.Artwork) View {
	return View{
		Selection: selection,
		Total:     gallery.Size,
		Image:     a.Image,
		ImageAlt:  a.Description,
		Title:     a.Title,
		Creator:   a.Creator,
		CreatedAt: a.CreatedAt,
		Controls: []Control{
			{Label: "Previous", Action: ActionPrevious, Enabled: true},
			{Label: "Next", Action: ActionNext, Enabled: true},
		},
	}
}

// Current builds the view for the screen's present selection.
func Current(s *gallery.Screen) View {
	return Build(s.Current())
}

// DateSuffix is the unemphasized tail of the byline, " (createdAt)".
func (v View) DateSuffix() string {
	return fmt.Sprintf(" (%s)", v.CreatedAt)
}

// Byline is the second caption line, "creator (createdAt)".
func (v View) Byline() string {
	return v.Creator + v.DateSuffix()
}
