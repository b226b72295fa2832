package binder

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// Signals creates a binder that decodes datastar signals into the target.
// GET requests carry signals in the "datastar" query parameter, other methods
// in the JSON body, capped at DefaultMaxJSONSize. Requests not issued by
// datastar are not applicable.
func Signals() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		if r.Header.Get("Datastar-Request") != "true" {
			return ErrBinderNotApplicable
		}
		if r.Method != http.MethodGet && r.Body != nil {
			body, err := readBody(r, DefaultMaxJSONSize)
			if err != nil {
				return err
			}
			r.Body = io.NopCloser(bytes.NewReader(body))
		}
		if err := datastar.ReadSignals(r, v); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSignals, err)
		}
		return nil
	}
}
