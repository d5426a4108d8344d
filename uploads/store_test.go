package uploads_test

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloomie-blog/uploads"
)

// fileHeader builds a real *multipart.FileHeader the way gin would hand one
// to the store.
func fileHeader(t *testing.T, field, filename, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func newTestStore(t *testing.T, maxBytes int64) *uploads.Store {
	t.Helper()
	store, err := uploads.NewStore(t.TempDir(), maxBytes)
	require.NoError(t, err)
	return store
}

func TestSaveStoresImageWithGeneratedName(t *testing.T) {
	store := newTestStore(t, 5<<20)
	fh := fileHeader(t, "image", "photo.PNG", "image/png", []byte("fake png bytes"))

	stored, err := store.Save(fh)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.URL, uploads.URLPrefix))
	assert.Equal(t, "photo.PNG", stored.OriginalName)
	assert.Equal(t, int64(len("fake png bytes")), stored.Size)
	assert.True(t, strings.HasSuffix(stored.Filename, ".png"), "extension folded to lowercase, got %q", stored.Filename)
	assert.NotContains(t, stored.Filename, "photo", "client names must not leak into storage")

	data, err := os.ReadFile(filepath.Join(store.Dir(), stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

func TestSaveRejectsNonImage(t *testing.T) {
	store := newTestStore(t, 5<<20)
	fh := fileHeader(t, "image", "report.pdf", "application/pdf", []byte("%PDF-"))

	_, err := store.Save(fh)
	assert.ErrorIs(t, err, uploads.ErrNotImage)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := newTestStore(t, 10)
	fh := fileHeader(t, "image", "big.jpg", "image/jpeg", bytes.Repeat([]byte("x"), 11))

	_, err := store.Save(fh)
	assert.ErrorIs(t, err, uploads.ErrTooLarge)
}

func TestRemove(t *testing.T) {
	store := newTestStore(t, 5<<20)
	fh := fileHeader(t, "image", "a.jpg", "image/jpeg", []byte("jpeg"))

	stored, err := store.Save(fh)
	require.NoError(t, err)

	require.NoError(t, store.Remove(stored.Filename))
	_, err = os.Stat(filepath.Join(store.Dir(), stored.Filename))
	assert.True(t, os.IsNotExist(err))

	assert.ErrorIs(t, store.Remove(stored.Filename), uploads.ErrNotFound)
}

func TestRemoveFlattensPathTraversal(t *testing.T) {
	store := newTestStore(t, 5<<20)

	outside := filepath.Join(filepath.Dir(store.Dir()), "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	err := store.Remove("../secret.txt")
	assert.ErrorIs(t, err, uploads.ErrNotFound, "traversal must resolve inside the upload dir")

	_, statErr := os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestRemoveByURL(t *testing.T) {
	store := newTestStore(t, 5<<20)
	fh := fileHeader(t, "image", "b.gif", "image/gif", []byte("gif"))

	stored, err := store.Save(fh)
	require.NoError(t, err)

	// external and data URLs are not ours to delete
	assert.NoError(t, store.RemoveByURL("https://cdn.example.com/x.png"))
	assert.NoError(t, store.RemoveByURL("data:image/png;base64,AAAA"))

	require.NoError(t, store.RemoveByURL(stored.URL))
	_, err = os.Stat(filepath.Join(store.Dir(), stored.Filename))
	assert.True(t, os.IsNotExist(err))
}
