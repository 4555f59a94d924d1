// Package api is the gallery web server
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"

	"github.com/aouyang1/artgallery/api/models"
	"github.com/aouyang1/artgallery/assets"
	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/render"
	"github.com/aouyang1/artgallery/store"
)

const shutdownTimeout = 5 * time.Second

type WebServer struct {
	router  *gin.Engine
	db      *store.Database
	screens *ScreenRegistry
	images  assets.Source
}

func NewWebServer(db *store.Database, screens *ScreenRegistry, images assets.Source, mode string) *WebServer {
	gin.SetMode(mode)

	var router *gin.Engine
	if mode == gin.DebugMode {
		router = gin.Default()
	} else {
		router = gin.New()
		router.Use(gin.Recovery(), requestLogger())
	}

	ws := &WebServer{
		router:  router,
		db:      db,
		screens: screens,
		images:  images,
	}
	ws.setupRoutes()
	return ws
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		slog.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (ws *WebServer) setupRoutes() {
	ws.router.GET("/", ws.handleIndex)
	ws.router.GET("/healthz", ws.handleHealth)

	ws.router.POST("/screens", ws.handleActivate)
	ws.router.GET("/screens/:id", ws.handleGetScreen)
	ws.router.POST("/screens/:id/next", ws.handleTransition(render.ActionNext))
	ws.router.POST("/screens/:id/previous", ws.handleTransition(render.ActionPrevious))

	ws.router.GET("/artworks", ws.handleListArtworks)
	ws.router.GET("/artworks/:index", ws.handleGetArtwork)
	ws.router.GET("/artworks/:index/image", ws.handleArtworkImage)
}

func (ws *WebServer) Handler() http.Handler {
	return ws.router
}

// Start serves on addr until ctx is cancelled.
func (ws *WebServer) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           ws.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting web server", "addr", addr, "images", ws.images.Name())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("web server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown web server: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("web server: %w", err)
	}
	return nil
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func renderHTML(c *gin.Context, status int, component templ.Component) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := component.Render(c.Request.Context(), c.Writer); err != nil {
		slog.Error("failed to render html", "path", c.Request.URL.Path, "error", err)
	}
}

func (ws *WebServer) handleIndex(c *gin.Context) {
	screen := ws.screens.Activate()
	slog.Debug("activated screen", "screen", screen.ID())

	c.Header("Cache-Control", "no-store")
	renderHTML(c, http.StatusOK, render.Page(render.Current(screen), screen.ID()))
}

func (ws *WebServer) handleHealth(c *gin.Context) {
	count, err := ws.db.GetArtworkCount(c.Request.Context())
	if err != nil {
		slog.Error("failed to count artworks", "error", err)
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:      "ok",
		Screens:     ws.screens.Len(),
		Transitions: ws.screens.Transitions(),
		Artworks:    count,
		Images:      ws.images.Name(),
	})
}

func (ws *WebServer) handleActivate(c *gin.Context) {
	screen := ws.screens.Activate()
	c.JSON(http.StatusCreated, models.ScreenResponse{
		ScreenID: screen.ID(),
		View:     render.Current(screen),
	})
}

func (ws *WebServer) handleGetScreen(c *gin.Context) {
	screen, err := ws.screens.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.ScreenResponse{
		ScreenID: screen.ID(),
		View:     render.Current(screen),
	})
}

func (ws *WebServer) handleTransition(action render.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		screen, err := ws.screens.Get(c.Param("id"))
		if err != nil {
			if isHTMX(c) {
				c.String(http.StatusNotFound, "Error: screen expired, reloading")
				return
			}
			c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
			return
		}

		var view render.View
		switch action {
		case render.ActionNext:
			view = render.Build(screen.Next())
		case render.ActionPrevious:
			view = render.Build(screen.Previous())
		}

		if isHTMX(c) {
			renderHTML(c, http.StatusOK, render.Screen(view, screen.ID()))
			return
		}
		c.JSON(http.StatusOK, models.ScreenResponse{ScreenID: screen.ID(), View: view})
	}
}

func artworkResponse(a store.Artwork) models.ArtworkResponse {
	return models.ArtworkResponse{
		Selection:   a.Position,
		Title:       a.Title,
		Creator:     a.Creator,
		CreatedAt:   a.CreatedAt,
		Description: a.Description,
		ImageURL:    render.ImageURL(a.Position),
	}
}

func (ws *WebServer) handleListArtworks(c *gin.Context) {
	rows, err := ws.db.GetArtworks(c.Request.Context())
	if err != nil {
		slog.Error("failed to list artworks", "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to list artworks: %v", err)})
		return
	}
	resp := models.ArtworkListResponse{
		Artworks: make([]models.ArtworkResponse, len(rows)),
		Total:    len(rows),
	}
	for i, a := range rows {
		resp.Artworks[i] = artworkResponse(a)
	}
	c.JSON(http.StatusOK, resp)
}

// lookupArtwork resolves the :index parameter against the store, writing the
// error response itself when it cannot.
func (ws *WebServer) lookupArtwork(c *gin.Context) (*store.Artwork, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid index parameter"})
		return nil, false
	}
	a, err := ws.db.GetArtwork(c.Request.Context(), index)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: fmt.Sprintf("Artwork %d not found, index must be between %d and %d", index, gallery.First, gallery.Size),
		})
		return nil, false
	}
	if err != nil {
		slog.Error("failed to get artwork", "index", index, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to get artwork: %v", err)})
		return nil, false
	}
	return a, true
}

func (ws *WebServer) handleGetArtwork(c *gin.Context) {
	a, ok := ws.lookupArtwork(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, artworkResponse(*a))
}

func (ws *WebServer) handleArtworkImage(c *gin.Context) {
	a, ok := ws.lookupArtwork(c)
	if !ok {
		return
	}

	data, err := assets.ReadAll(c.Request.Context(), ws.images, a.Image)
	if errors.Is(err, assets.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: fmt.Sprintf("Image file not found: %s", a.Image)})
		return
	}
	if err != nil {
		slog.Error("failed to load image", "name", a.Image, "error", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: fmt.Sprintf("Failed to load image: %v", err)})
		return
	}

	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
