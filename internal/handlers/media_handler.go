package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/okabanov/socialite/pkg/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// MediaHandler handles avatar and post image uploads
type MediaHandler struct {
	store *storage.MediaStore
}

// NewMediaHandler creates a new MediaHandler. store may be nil when object
// storage is not configured; the upload route then answers 503.
func NewMediaHandler(store *storage.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// RegisterMediaRoutes registers media-related routes
func (h *MediaHandler) RegisterMediaRoutes(g *echo.Group) {
	g.POST("/media", h.Upload)
}

// Upload accepts a multipart file and returns its public URL
func (h *MediaHandler) Upload(c echo.Context) error {
	if h.store == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "Media storage is not configured")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Missing file field")
	}
	if fileHeader.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "File exceeds the 10 MiB limit")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read uploaded file")
	}
	defer file.Close()

	url, err := h.store.Upload(
		c.Request().Context(),
		file,
		fileHeader.Size,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, echo.Map{"url": url})
}
