package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"umbaer-craft-backend/internal/handlers"
)

func staticRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<html>shop</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log('hi')"), 0o644))

	router := gin.New()
	router.NoRoute(handlers.SPAHandler(dir))
	return router, dir
}

func TestSPAHandler_ServesExistingFile(t *testing.T) {
	router, _ := staticRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/app.js", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "console.log")
}

func TestSPAHandler_FallsBackToIndex(t *testing.T) {
	router, _ := staticRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/order", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "shop")
}

func TestSPAHandler_APIPathsAreNotSwallowed(t *testing.T) {
	router, _ := staticRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/nope", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
