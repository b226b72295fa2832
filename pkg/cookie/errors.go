package cookie

import "errors"

var (
	ErrNoSecret         = errors.New("cookie: no secret configured")
	ErrSecretTooShort   = errors.New("cookie: secret too short")
	ErrNotFound         = errors.New("cookie: not found")
	ErrInvalidFormat    = errors.New("cookie: invalid format")
	ErrInvalidSignature = errors.New("cookie: invalid signature")
	ErrDecryptionFailed = errors.New("cookie: decryption failed")
)
