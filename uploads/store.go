// Package uploads stores blog images on the local filesystem and serves
// them back under the /images URL prefix.
package uploads

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// URLPrefix is the public path prefix uploaded files are served under.
const URLPrefix = "/images/"

// ErrNotImage rejects uploads whose declared content type is not image/*.
var ErrNotImage = errors.New("only image files are allowed")

// ErrTooLarge rejects uploads over the configured size limit.
var ErrTooLarge = errors.New("image exceeds the upload size limit")

// ErrNotFound is returned when a stored file does not exist.
var ErrNotFound = errors.New("image not found")

// Stored describes one successfully saved upload.
type Stored struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

// Store writes uploaded images into a single directory with generated
// names. It owns no state beyond the directory path, so it is safe to
// share across requests.
type Store struct {
	dir      string
	maxBytes int64
}

// NewStore creates the upload directory if needed and returns a store
// enforcing the given per-file size limit.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Dir returns the directory files are stored in.
func (s *Store) Dir() string { return s.dir }

// Save validates and persists one multipart file, returning its public URL
// and metadata. Filenames are generated (timestamp + random), never taken
// from the client.
func (s *Store) Save(fh *multipart.FileHeader) (*Stored, error) {
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return nil, ErrTooLarge
	}
	if !strings.HasPrefix(fh.Header.Get("Content-Type"), "image/") {
		return nil, ErrNotImage
	}

	name := fmt.Sprintf("%d-%s%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		strings.ToLower(filepath.Ext(fh.Filename)),
	)

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return nil, err
	}

	return &Stored{
		URL:          URLPrefix + name,
		Filename:     name,
		OriginalName: fh.Filename,
		Size:         fh.Size,
	}, nil
}

// Remove deletes a stored file by name. The name is flattened to its base
// so path traversal cannot escape the upload directory.
func (s *Store) Remove(filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// RemoveByURL deletes the file behind a stored image URL. URLs outside the
// local /images prefix (external or data URIs) are ignored.
func (s *Store) RemoveByURL(url string) error {
	if !strings.HasPrefix(url, URLPrefix) {
		return nil
	}
	return s.Remove(strings.TrimPrefix(url, URLPrefix))
}
