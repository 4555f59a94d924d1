package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aouyang1/artgallery/api/models"
)

const defaultTimeout = 10 * time.Second

type GalleryClient struct {
	baseURL string
	client  *http.Client
}

func NewGalleryClient(baseURL string) *GalleryClient {
	return &GalleryClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: defaultTimeout},
	}
}

// GetArtworks retrieves the catalog in selection order
func (gc *GalleryClient) GetArtworks(ctx context.Context) (*models.ArtworkListResponse, error) {
	var resp models.ArtworkListResponse
	if err := gc.do(ctx, http.MethodGet, "/artworks", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NewScreen activates a fresh screen on the server
func (gc *GalleryClient) NewScreen(ctx context.Context) (*models.ScreenResponse, error) {
	var resp models.ScreenResponse
	if err := gc.do(ctx, http.MethodPost, "/screens", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (gc *GalleryClient) GetScreen(ctx context.Context, screenID string) (*models.ScreenResponse, error) {
	var resp models.ScreenResponse
	if err := gc.do(ctx, http.MethodGet, "/screens/"+url.PathEscape(screenID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Next clicks the screen's Next control
func (gc *GalleryClient) Next(ctx context.Context, screenID string) (*models.ScreenResponse, error) {
	return gc.transition(ctx, screenID, "next")
}

// Previous clicks the screen's Previous control
func (gc *GalleryClient) Previous(ctx context.Context, screenID string) (*models.ScreenResponse, error) {
	return gc.transition(ctx, screenID, "previous")
}

func (gc *GalleryClient) transition(ctx context.Context, screenID, action string) (*models.ScreenResponse, error) {
	var resp models.ScreenResponse
	path := "/screens/" + url.PathEscape(screenID) + "/" + action
	if err := gc.do(ctx, http.MethodPost, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (gc *GalleryClient) do(ctx context.Context, method, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, gc.baseURL+path, bytes.NewReader(nil))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := gc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error: %s", errResp.Error)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}
