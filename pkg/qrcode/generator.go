package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the image size in pixels used when size <= 0.
const DefaultSize = 256

type options struct {
	level      skipqrcode.RecoveryLevel
	foreground color.Color
	background color.Color
	noBorder   bool
}

// Option configures QR code generation.
type Option func(*options)

// WithRecoveryLevel sets the error correction level. Medium by default.
func WithRecoveryLevel(level skipqrcode.RecoveryLevel) Option {
	return func(o *options) {
		o.level = level
	}
}

// WithForeground sets the module colour.
func WithForeground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.foreground = c
		}
	}
}

// WithoutBorder removes the quiet zone.
func WithoutBorder() Option {
	return func(o *options) {
		o.noBorder = true
	}
}

// Generate encodes content as a PNG QR code of size by size pixels.
func Generate(content string, size int, opts ...Option) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}

	o := options{level: skipqrcode.Medium, foreground: color.Black, background: color.White}
	for _, opt := range opts {
		opt(&o)
	}

	q, err := skipqrcode.New(content, o.level)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	q.ForegroundColor = o.foreground
	q.BackgroundColor = o.background
	q.DisableBorder = o.noBorder

	png, err := q.PNG(size)
	if err != nil {
		return nil, errors.Join(ErrorFailedToGenerateQRCode, err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG as a data URI usable in an img src.
func GenerateBase64Image(content string, size int, opts ...Option) (string, error) {
	png, err := Generate(content, size, opts...)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// ParseHexColor parses #rgb or #rrggbb.
func ParseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
