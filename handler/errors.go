package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/dmitrymomot/signaturecraft/pkg/validator"
)

// Package-level errors for common failure scenarios
var (
	// ErrNilResponse indicates a handler returned nil instead of a Response
	ErrNilResponse = errors.New("handler returned nil response")
)

// HTTPError is an error with an HTTP status code and a machine-readable key.
type HTTPError struct {
	Code int    // HTTP status code
	Key  string // stable error key, e.g. "not_found"
}

// Error implements the error interface.
func (e HTTPError) Error() string {
	return e.Key
}

// NewHTTPError creates a custom HTTP error with the given status code and key.
func NewHTTPError(code int, key string) HTTPError {
	return HTTPError{Code: code, Key: key}
}

// Predefined HTTP errors used by the modules.
var (
	ErrBadRequest          = HTTPError{Code: http.StatusBadRequest, Key: "bad_request"}
	ErrUnauthorized        = HTTPError{Code: http.StatusUnauthorized, Key: "unauthorized"}
	ErrForbidden           = HTTPError{Code: http.StatusForbidden, Key: "forbidden"}
	ErrNotFound            = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrConflict            = HTTPError{Code: http.StatusConflict, Key: "conflict"}
	ErrRequestTooLarge     = HTTPError{Code: http.StatusRequestEntityTooLarge, Key: "request_entity_too_large"}
	ErrUnsupportedMedia    = HTTPError{Code: http.StatusUnsupportedMediaType, Key: "unsupported_media_type"}
	ErrTooManyRequests     = HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}
	ErrInternalServerError = HTTPError{Code: http.StatusInternalServerError, Key: "internal_server_error"}
	ErrServiceUnavailable  = HTTPError{Code: http.StatusServiceUnavailable, Key: "service_unavailable"}
)

// ValidationError maps field names to their error messages.
type ValidationError url.Values

// NewValidationError creates an empty ValidationError.
func NewValidationError() ValidationError {
	return ValidationError{}
}

// Add appends a message for the field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for the field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has reports whether the field has any messages.
func (e ValidationError) Has(field string) bool {
	return url.Values(e).Has(field)
}

// IsEmpty reports whether there are no messages.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

func (e ValidationError) Error() string {
	return "validation failed"
}

// AsValidationError converts validation failures from the validator package or
// this package into a ValidationError.
func AsValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}

	var rules validator.ValidationErrors
	if errors.As(err, &rules) {
		out := NewValidationError()
		for _, r := range rules {
			out.Add(r.Field, r.Message)
		}
		return out, true
	}

	return nil, false
}

// ErrorRule maps errors matching Target (errors.Is) to As.
type ErrorRule struct {
	Target error
	As     error
}

// MapError returns the As error of the first matching rule, or err unchanged.
//
//	return handler.JSONError(handler.MapError(err,
//		handler.ErrorRule{Target: repository.ErrNotFound, As: handler.ErrNotFound},
//	))
func MapError(err error, rules ...ErrorRule) error {
	for _, r := range rules {
		if errors.Is(err, r.Target) {
			return r.As
		}
	}
	return err
}

type errorResponse struct {
	err error
}

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	if e.err == nil {
		return ErrInternalServerError
	}
	return e.err
}

// Fail returns a Response that writes nothing and passes err to the error
// handler configured with WithErrorHandler, which picks the page, toast or
// JSON representation for the request.
func Fail(err error) Response {
	return errorResponse{err: err}
}
