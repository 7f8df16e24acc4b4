package storage

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Store writes uploaded files to disk under a base directory. Each request
// gets its own UUID-named subdirectory, so concurrent submissions never
// collide.
type Store struct {
	baseDir string
}

func NewStore(baseDir string) (*Store, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("upload base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{baseDir: baseDir}, nil
}

// Begin allocates the per-request directory.
func (s *Store) Begin() (*Upload, error) {
	dir := filepath.Join(s.baseDir, uuid.New().String())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create request upload dir: %w", err)
	}
	return &Upload{dir: dir}, nil
}

// Upload holds the files of a single request. It exists only until Cleanup.
type Upload struct {
	dir   string
	files []SavedFile
}

// SavedFile is one stored upload, keyed by the multipart field it came from.
type SavedFile struct {
	Field string
	Name  string
	Path  string
	Size  int64
}

// Save writes one multipart file into the request directory. The stored
// filename is prefixed with an index so two uploads sharing a basename do
// not overwrite each other.
func (u *Upload) Save(field string, fh *multipart.FileHeader) (SavedFile, error) {
	src, err := fh.Open()
	if err != nil {
		return SavedFile{}, fmt.Errorf("open upload %q: %w", fh.Filename, err)
	}
	defer src.Close()

	name := safeFilename(fh.Filename)
	path := filepath.Join(u.dir, fmt.Sprintf("%d_%s", len(u.files), name))
	dst, err := os.Create(path)
	if err != nil {
		return SavedFile{}, fmt.Errorf("create %q: %w", path, err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		return SavedFile{}, fmt.Errorf("write %q: %w", path, err)
	}

	saved := SavedFile{Field: field, Name: name, Path: path, Size: size}
	u.files = append(u.files, saved)
	return saved, nil
}

// Files returns everything saved so far, in save order.
func (u *Upload) Files() []SavedFile {
	return u.files
}

// Cleanup deletes the request directory. It runs whether or not the outbound
// send succeeded; deletion errors are logged and never surface, so they
// cannot mask the result already determined for the caller.
func (u *Upload) Cleanup() {
	if err := os.RemoveAll(u.dir); err != nil {
		log.Printf("Warning: failed to clean up uploads in %s: %v", u.dir, err)
	}
}

func safeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, string(os.PathSeparator), "_")
	name = strings.TrimSpace(name)
	if name == "" || name == "." {
		return "upload"
	}
	return name
}
