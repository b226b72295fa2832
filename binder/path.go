package binder

import (
	"fmt"
	"net/http"
)

// Path creates a binder for fields tagged `path:"name"`, reading values with
// extractor. chi.URLParam satisfies the extractor signature:
//
//	r.Get("/api/signatures/{id}", handler.Wrap(h.get,
//		handler.WithBinders[handler.Context, getRequest](binder.Path(chi.URLParam)),
//	))
func Path(extractor func(r *http.Request, name string) string) func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if extractor == nil {
			return fmt.Errorf("%w: extractor function is nil", ErrInvalidPath)
		}

		rv, err := structValue(v, ErrInvalidPath)
		if err != nil {
			return err
		}
		rt := rv.Type()

		for i := range rv.NumField() {
			field := rv.Field(i)
			if !field.CanSet() {
				continue
			}
			name, ok := tagValue(rt.Field(i), "path")
			if !ok {
				continue
			}
			value := extractor(r, name)
			if value == "" {
				continue
			}
			if err := setFieldValue(field, field.Type(), []string{value}); err != nil {
				return fmt.Errorf("%w: field %s: %v", ErrInvalidPath, name, err)
			}
		}
		return nil
	}
}
