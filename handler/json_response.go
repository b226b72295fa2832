package handler

import (
	"encoding/json"
	"errors"
	"maps"
	"net/http"

	"github.com/dmitrymomot/signaturecraft/binder"
)

// JSONResponse is the envelope of every API response.
type JSONResponse struct {
	Data  any            `json:"data,omitempty"`
	Meta  map[string]any `json:"meta,omitempty"`
	Error *ErrorDetail   `json:"error,omitempty"`
}

// ErrorDetail describes an API error.
type ErrorDetail struct {
	Code    string              `json:"code,omitempty"`
	Message string              `json:"message,omitempty"`
	Details map[string][]string `json:"details,omitempty"`
}

type jsonResponse struct {
	status int
	body   JSONResponse
}

func (j jsonResponse) Render(w http.ResponseWriter, _ *http.Request) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(j.status)
	return json.NewEncoder(w).Encode(j.body)
}

// JSONOption configures a JSON response.
type JSONOption func(*jsonResponse)

// WithJSONStatus overrides the HTTP status code.
func WithJSONStatus(status int) JSONOption {
	return func(r *jsonResponse) {
		r.status = status
	}
}

// WithJSONMeta sets the meta object.
func WithJSONMeta(meta map[string]any) JSONOption {
	return func(r *jsonResponse) {
		r.body.Meta = meta
	}
}

// JSON wraps v into the data field with status 200. An error value is
// rendered as JSONError would.
func JSON(v any, opts ...JSONOption) Response {
	if err, ok := v.(error); ok {
		return JSONError(err, opts...)
	}

	r := &jsonResponse{status: http.StatusOK}
	if env, ok := v.(JSONResponse); ok {
		r.body = env
	} else {
		r.body.Data = v
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// JSONError renders err into the error field. The status code follows the
// error: 422 for validation errors, the HTTPError code, 400 or 415 for binding
// errors and 500 for everything else.
func JSONError(err error, opts ...JSONOption) Response {
	r := &jsonResponse{status: http.StatusInternalServerError}
	r.status, r.body.Error = errorToDetail(err)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// StatusCode returns the HTTP status an error is rendered with.
func StatusCode(err error) int {
	status, _ := errorToDetail(err)
	return status
}

func errorToDetail(err error) (int, *ErrorDetail) {
	if err == nil {
		return http.StatusInternalServerError, &ErrorDetail{
			Code:    ErrInternalServerError.Key,
			Message: http.StatusText(http.StatusInternalServerError),
		}
	}

	if ve, ok := AsValidationError(err); ok {
		detail := &ErrorDetail{Code: "validation_error", Message: ve.Error()}
		if len(ve) > 0 {
			detail.Details = make(map[string][]string, len(ve))
			maps.Copy(detail.Details, ve)
		}
		return http.StatusUnprocessableEntity, detail
	}

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, &ErrorDetail{Code: httpErr.Key, Message: http.StatusText(httpErr.Code)}
	}

	switch {
	case errors.Is(err, binder.ErrUnsupportedMediaType), errors.Is(err, binder.ErrMissingContentType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: ErrUnsupportedMedia.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrFileTooLarge), errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge, &ErrorDetail{Code: ErrRequestTooLarge.Key, Message: err.Error()}
	case errors.Is(err, binder.ErrInvalidJSON),
		errors.Is(err, binder.ErrInvalidForm),
		errors.Is(err, binder.ErrInvalidQuery),
		errors.Is(err, binder.ErrInvalidPath),
		errors.Is(err, binder.ErrInvalidSignals):
		return http.StatusBadRequest, &ErrorDetail{Code: ErrBadRequest.Key, Message: err.Error()}
	}

	// Internal error text is never exposed.
	return http.StatusInternalServerError, &ErrorDetail{
		Code:    ErrInternalServerError.Key,
		Message: http.StatusText(http.StatusInternalServerError),
	}
}
