package storage_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"umbaer-craft-backend/internal/storage"
)

// multipartForm builds a parsed multipart form with the given file fields.
func multipartForm(t *testing.T, files map[string][]string) *multipart.Form {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for field, names := range files {
		for _, name := range names {
			part, err := w.CreateFormFile(field, name)
			require.NoError(t, err)
			_, err = part.Write([]byte("content of " + name))
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/api/order", buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm
}

func TestStore_SaveAndCleanup(t *testing.T) {
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	form := multipartForm(t, map[string][]string{
		"slip":       {"slip.png"},
		"references": {"ref1.png", "ref2.png"},
	})

	upload, err := store.Begin()
	require.NoError(t, err)

	saved, err := upload.Save("slip", form.File["slip"][0])
	require.NoError(t, err)
	assert.Equal(t, "slip.png", saved.Name)
	assert.FileExists(t, saved.Path)

	data, err := os.ReadFile(saved.Path)
	require.NoError(t, err)
	assert.Equal(t, "content of slip.png", string(data))

	for _, fh := range form.File["references"] {
		_, err := upload.Save("references", fh)
		require.NoError(t, err)
	}
	assert.Len(t, upload.Files(), 3)

	upload.Cleanup()
	for _, f := range upload.Files() {
		assert.NoFileExists(t, f.Path)
	}
}

func TestStore_ConcurrentUploadsDoNotCollide(t *testing.T) {
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	form := multipartForm(t, map[string][]string{"slip": {"slip.png"}})

	a, err := store.Begin()
	require.NoError(t, err)
	b, err := store.Begin()
	require.NoError(t, err)

	savedA, err := a.Save("slip", form.File["slip"][0])
	require.NoError(t, err)
	savedB, err := b.Save("slip", form.File["slip"][0])
	require.NoError(t, err)

	assert.NotEqual(t, savedA.Path, savedB.Path)

	a.Cleanup()
	assert.NoFileExists(t, savedA.Path)
	assert.FileExists(t, savedB.Path)
	b.Cleanup()
}

func TestStore_SanitizesTraversalFilenames(t *testing.T) {
	store, err := storage.NewStore(t.TempDir())
	require.NoError(t, err)

	form := multipartForm(t, map[string][]string{"slip": {"../../escape.png"}})

	upload, err := store.Begin()
	require.NoError(t, err)
	defer upload.Cleanup()

	saved, err := upload.Save("slip", form.File["slip"][0])
	require.NoError(t, err)
	assert.Equal(t, "escape.png", saved.Name)
}

func TestNewStore_RequiresBaseDir(t *testing.T) {
	_, err := storage.NewStore("  ")
	assert.Error(t, err)
}
