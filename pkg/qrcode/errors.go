package qrcode

import "errors"

var (
	ErrEmptyContent             = errors.New("content cannot be empty")
	ErrorFailedToGenerateQRCode = errors.New("failed to generate QR code")
	ErrInvalidColor             = errors.New("invalid hex color")
)
