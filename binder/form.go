package binder

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"reflect"
)

// DefaultMaxMemory is the multipart memory limit used by Form.
const DefaultMaxMemory int64 = 10 << 20

var fileHeaderType = reflect.TypeOf((*multipart.FileHeader)(nil))

// Form creates a binder for application/x-www-form-urlencoded and
// multipart/form-data bodies.
//
// Fields tagged `form:"name"` receive values; fields of type
// *multipart.FileHeader or []*multipart.FileHeader tagged `file:"name"`
// receive uploaded files:
//
//	type uploadRequest struct {
//		Logo *multipart.FileHeader `file:"logo"`
//		Alt  string                `form:"alt"`
//	}
//
// Requests with other content types are not applicable.
func Form() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if !hasBody(r) {
			return ErrBinderNotApplicable
		}
		mediaType, err := requestMediaType(r)
		if err != nil {
			return err
		}

		switch mediaType {
		case "application/x-www-form-urlencoded":
			if err := r.ParseForm(); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			return bindToStruct(v, "form", r.PostForm, ErrInvalidForm)

		case "multipart/form-data":
			if err := r.ParseMultipartForm(DefaultMaxMemory); err != nil {
				return fmt.Errorf("%w: %v", ErrInvalidForm, err)
			}
			if err := bindToStruct(v, "form", r.MultipartForm.Value, ErrInvalidForm); err != nil {
				return err
			}
			return bindFiles(v, r.MultipartForm.File)

		default:
			return ErrBinderNotApplicable
		}
	}
}

func bindFiles(v any, files map[string][]*multipart.FileHeader) error {
	rv, err := structValue(v, ErrInvalidForm)
	if err != nil {
		return err
	}
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}
		name, ok := tagValue(rt.Field(i), "file")
		if !ok {
			continue
		}
		headers := files[name]
		if len(headers) == 0 {
			continue
		}

		switch field.Type() {
		case fileHeaderType:
			field.Set(reflect.ValueOf(headers[0]))
		case reflect.SliceOf(fileHeaderType):
			field.Set(reflect.ValueOf(headers))
		default:
			return fmt.Errorf("%w: field %s must be *multipart.FileHeader", ErrInvalidForm, name)
		}
	}
	return nil
}

// ReadFile reads an uploaded file, refusing files larger than maxSize bytes.
func ReadFile(fh *multipart.FileHeader, maxSize int64) ([]byte, error) {
	if fh == nil {
		return nil, fmt.Errorf("%w: no file", ErrInvalidForm)
	}
	if maxSize > 0 && fh.Size > maxSize {
		return nil, ErrFileTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	defer f.Close()

	buf := make([]byte, fh.Size)
	n, err := io.ReadFull(f, buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
	}
	return buf[:n], nil
}
