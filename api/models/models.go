// Package models tracks all api models for request and responses
package models

import "github.com/aouyang1/artgallery/render"

type ArtworkResponse struct {
	Selection   int    `json:"selection"`
	Title       string `json:"title"`
	Creator     string `json:"creator"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type ArtworkListResponse struct {
	Artworks []ArtworkResponse `json:"artworks"`
	Total    int               `json:"total"`
}

type ScreenResponse struct {
	ScreenID string      `json:"screen_id"`
	View     render.View `json:"view"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Screens     int    `json:"screens"`
	Transitions int64  `json:"transitions"`
	Artworks    int    `json:"artworks"`
	Images      string `json:"images"`
}
