package file

import (
	"context"
	"fmt"
)

const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures the storage backend.
type Config struct {
	Driver   string `env:"LOGO_STORAGE" envDefault:"local"`
	LocalDir string `env:"LOGO_LOCAL_DIR" envDefault:"./data/uploads"`
	LocalURL string `env:"LOGO_LOCAL_URL" envDefault:"/uploads/"`
	MaxBytes int64  `env:"LOGO_MAX_BYTES" envDefault:"2097152"`
	S3       S3Config
}

// New builds the storage backend named by cfg.Driver.
func New(ctx context.Context, cfg Config, opts ...S3Option) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocalStorage(cfg.LocalDir, cfg.LocalURL)
	case DriverS3:
		return NewS3Storage(ctx, cfg.S3, opts...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
