package file_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/file"
)

func TestLocalStorage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("put and delete", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(dir, "/uploads")
		require.NoError(t, err)

		data := pngBytes(t)
		obj, err := storage.Put(ctx, "logos/u1/logo.png", "image/png", data)
		require.NoError(t, err)
		assert.Equal(t, "logos/u1/logo.png", obj.Key)
		assert.Equal(t, "/uploads/logos/u1/logo.png", obj.URL)
		assert.Equal(t, int64(len(data)), obj.Size)

		stored, err := os.ReadFile(filepath.Join(dir, "logos", "u1", "logo.png"))
		require.NoError(t, err)
		assert.Equal(t, data, stored)

		require.NoError(t, storage.Delete(ctx, "logos/u1/logo.png"))
		assert.ErrorIs(t, storage.Delete(ctx, "logos/u1/logo.png"), file.ErrFileNotFound)
	})

	t.Run("overwrite", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(dir, "/uploads/")
		require.NoError(t, err)

		_, err = storage.Put(ctx, "a.txt", "text/plain", []byte("one"))
		require.NoError(t, err)
		_, err = storage.Put(ctx, "a.txt", "text/plain", []byte("two"))
		require.NoError(t, err)

		stored, err := os.ReadFile(filepath.Join(dir, "a.txt"))
		require.NoError(t, err)
		assert.Equal(t, "two", string(stored))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temporary files must not be left behind")
	})

	t.Run("rejects traversal and empty data", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(t.TempDir(), "/uploads/")
		require.NoError(t, err)

		_, err = storage.Put(ctx, "../escape.png", "image/png", []byte("x"))
		assert.ErrorIs(t, err, file.ErrInvalidKey)

		_, err = storage.Put(ctx, "empty.png", "image/png", nil)
		assert.ErrorIs(t, err, file.ErrEmptyContent)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(t.TempDir(), "/uploads/")
		require.NoError(t, err)

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = storage.Put(cctx, "a.png", "image/png", []byte("x"))
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("empty base dir", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("", "/uploads/")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("handler serves stored files", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(t.TempDir(), "/uploads/")
		require.NoError(t, err)

		data := pngBytes(t)
		_, err = storage.Put(ctx, "logos/logo.png", "image/png", data)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		storage.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/logos/logo.png", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, data, rec.Body.Bytes())
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))

		rec = httptest.NewRecorder()
		storage.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/uploads/logos/", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	storage, err := file.New(context.Background(), file.Config{Driver: file.DriverLocal, LocalDir: t.TempDir(), LocalURL: "/u/"})
	require.NoError(t, err)
	assert.Equal(t, "/u/x.png", storage.URL("x.png"))

	_, err = file.New(context.Background(), file.Config{Driver: "ftp"})
	assert.ErrorIs(t, err, file.ErrUnknownDriver)
}
