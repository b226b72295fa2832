package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage keeps files in a directory on disk.
// All keys resolve inside baseDir.
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates the base directory if needed.
// baseURL is the public prefix files are served under (e.g. "/uploads/").
func NewLocalStorage(baseDir, baseURL string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalStorage{baseDir: abs, baseURL: baseURL}, nil
}

// Put writes data to a temporary file and renames it into place.
func (s *LocalStorage) Put(ctx context.Context, key, contentType string, data []byte) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyContent
	}

	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}
	target := s.resolve(key)

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToWrite, err)
	}

	return &Object{
		Key:         key,
		ContentType: contentType,
		Size:        int64(len(data)),
		URL:         s.URL(key),
	}, nil
}

// Delete removes the file stored under key.
func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	key, err := CleanKey(key)
	if err != nil {
		return err
	}
	if err := os.Remove(s.resolve(key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrFileNotFound
		}
		return fmt.Errorf("%w: %v", ErrFailedToDelete, err)
	}
	return nil
}

// URL returns the public URL for key.
func (s *LocalStorage) URL(key string) string {
	return joinURL(s.baseURL, key)
}

// Handler serves stored files. Mount it under the storage base URL.
func (s *LocalStorage) Handler() http.Handler {
	fileServer := http.FileServer(http.Dir(s.baseDir))
	return http.StripPrefix(strings.TrimSuffix(s.baseURL, "/"), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("X-Content-Type-Options", "nosniff")
		fileServer.ServeHTTP(w, r)
	}))
}

func (s *LocalStorage) resolve(key string) string {
	return filepath.Join(s.baseDir, filepath.FromSlash(key))
}
