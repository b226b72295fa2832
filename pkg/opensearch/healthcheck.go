package opensearch

import (
	"context"
	"errors"
	"fmt"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// Healthcheck returns a probe that calls the cluster info endpoint.
func Healthcheck(transport opensearchapi.Transport) func(context.Context) error {
	return func(ctx context.Context) error {
		res, err := opensearchapi.InfoRequest{}.Do(ctx, transport)
		if err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		defer func() { _ = res.Body.Close() }()

		if res.IsError() {
			return fmt.Errorf("%w: status %d", ErrHealthcheckFailed, res.StatusCode)
		}
		return nil
	}
}
