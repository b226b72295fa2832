package binder

import "errors"

// Common binding errors
var (
	// ErrBinderNotApplicable is returned when a binder does not apply to the
	// request (wrong method or content type). handler.Wrap skips such binders.
	ErrBinderNotApplicable = errors.New("binder not applicable")

	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidJSON          = errors.New("invalid JSON")
	ErrInvalidForm          = errors.New("invalid form data")
	ErrInvalidQuery         = errors.New("invalid query parameter")
	ErrInvalidPath          = errors.New("invalid path parameter")
	ErrInvalidSignals       = errors.New("invalid datastar signals")
	ErrFileTooLarge         = errors.New("file too large")
	ErrBodyTooLarge         = errors.New("request body too large")
)
