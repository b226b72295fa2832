package file

import (
	"context"
	"encoding/base64"
	"net/http"
	"path"
	"strings"
)

// Object describes a stored file.
type Object struct {
	Key         string `json:"key"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
	URL         string `json:"url"`
}

// Storage persists uploaded files under slash-separated keys.
type Storage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (*Object, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// imageTypes maps the image MIME types accepted for logos to file extensions.
var imageTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// DetectImage sniffs data and returns its MIME type and extension.
// Returns ErrNotAnImage for anything other than PNG, JPEG, GIF or WebP.
func DetectImage(data []byte) (mimeType, ext string, err error) {
	if len(data) == 0 {
		return "", "", ErrEmptyContent
	}
	mimeType = http.DetectContentType(data)
	ext, ok := imageTypes[mimeType]
	if !ok {
		return "", "", ErrNotAnImage
	}
	return mimeType, ext, nil
}

// DataURI encodes data as a base64 data URI.
func DataURI(mimeType string, data []byte) string {
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// CleanKey normalizes a storage key and rejects keys escaping the storage root.
func CleanKey(key string) (string, error) {
	key = strings.ReplaceAll(strings.TrimSpace(key), "\\", "/")
	if key == "" || strings.ContainsRune(key, 0) {
		return "", ErrInvalidKey
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", ErrInvalidKey
		}
	}
	key = strings.TrimPrefix(path.Clean("/"+key), "/")
	if key == "" {
		return "", ErrInvalidKey
	}
	return key, nil
}

// SanitizeFilename strips directories and NUL bytes from a client supplied filename.
// Returns "unnamed" for empty or special directory references.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)
	filename = strings.ReplaceAll(filename, "\x00", "")

	if filename == "." || filename == ".." || filename == "" || filename == "/" {
		filename = "unnamed"
	}
	return filename
}

func joinURL(base, key string) string {
	if base == "" {
		return "/" + key
	}
	return strings.TrimSuffix(base, "/") + "/" + key
}
