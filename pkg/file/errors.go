package file

import "errors"

var (
	ErrInvalidKey     = errors.New("invalid object key")
	ErrEmptyContent   = errors.New("file content is empty")
	ErrFileNotFound   = errors.New("file not found")
	ErrFileTooLarge   = errors.New("file size exceeds maximum allowed size")
	ErrNotAnImage     = errors.New("file is not a supported image")
	ErrInvalidConfig  = errors.New("invalid storage configuration")
	ErrUnknownDriver  = errors.New("unknown storage driver")
	ErrFailedToWrite  = errors.New("failed to write file")
	ErrFailedToDelete = errors.New("failed to delete file")

	// S3 classification
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrServiceUnavailable = errors.New("storage service temporarily unavailable")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
	ErrFailedToLoadConfig = errors.New("failed to load AWS config")
)
