package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"umbaer-craft-backend/internal/models"
)

// SPAHandler serves the pre-built single-page app and falls back to
// index.html for unmatched routes, so client-side routing keeps working.
// API paths are excluded from the fallback.
func SPAHandler(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Success: false,
				Error:   "not found",
				Kind:    models.ErrKindBadRequest,
			})
			return
		}

		path := filepath.Join(staticDir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			c.File(path)
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	}
}
