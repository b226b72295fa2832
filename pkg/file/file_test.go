package file_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/file"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDetectImage(t *testing.T) {
	t.Parallel()

	t.Run("png", func(t *testing.T) {
		t.Parallel()
		mimeType, ext, err := file.DetectImage(pngBytes(t))
		require.NoError(t, err)
		assert.Equal(t, "image/png", mimeType)
		assert.Equal(t, ".png", ext)
	})

	t.Run("gif", func(t *testing.T) {
		t.Parallel()
		mimeType, ext, err := file.DetectImage([]byte("GIF89a\x01\x00\x01\x00"))
		require.NoError(t, err)
		assert.Equal(t, "image/gif", mimeType)
		assert.Equal(t, ".gif", ext)
	})

	t.Run("text is rejected", func(t *testing.T) {
		t.Parallel()
		_, _, err := file.DetectImage([]byte("<html><body>hi</body></html>"))
		assert.ErrorIs(t, err, file.ErrNotAnImage)
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		_, _, err := file.DetectImage(nil)
		assert.ErrorIs(t, err, file.ErrEmptyContent)
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	data := pngBytes(t)
	uri := file.DataURI("image/png", data)
	require.True(t, len(uri) > len("data:image/png;base64,"))
	assert.Equal(t, "data:image/png;base64,", uri[:len("data:image/png;base64,")])

	decoded, err := base64.StdEncoding.DecodeString(uri[len("data:image/png;base64,"):])
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestCleanKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "simple", key: "logos/a.png", want: "logos/a.png"},
		{name: "leading slash", key: "/logos/a.png", want: "logos/a.png"},
		{name: "backslashes", key: `logos\a.png`, want: "logos/a.png"},
		{name: "duplicate slashes", key: "logos//a.png", want: "logos/a.png"},
		{name: "traversal", key: "../etc/passwd", wantErr: true},
		{name: "nested traversal", key: "logos/../../x", wantErr: true},
		{name: "empty", key: "  ", wantErr: true},
		{name: "root only", key: "/", wantErr: true},
		{name: "nul byte", key: "a\x00b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := file.CleanKey(tt.key)
			if tt.wantErr {
				assert.ErrorIs(t, err, file.ErrInvalidKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "passwd", file.SanitizeFilename("../../../etc/passwd"))
	assert.Equal(t, "file.txt", file.SanitizeFilename(`C:\Windows\file.txt`))
	assert.Equal(t, "unnamed", file.SanitizeFilename(""))
	assert.Equal(t, "unnamed", file.SanitizeFilename(".."))
}
