package opensearch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"
)

// EnsureIndex creates index with the given JSON body unless it already exists.
func EnsureIndex(ctx context.Context, transport opensearchapi.Transport, index string, body []byte) error {
	res, err := opensearchapi.IndicesExistsRequest{Index: []string{index}}.Do(ctx, transport)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	_ = res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("%w: exists check returned status %d", ErrIndexFailed, res.StatusCode)
	}

	res, err = opensearchapi.IndicesCreateRequest{
		Index: index,
		Body:  bytes.NewReader(body),
	}.Do(ctx, transport)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.IsError() {
		return fmt.Errorf("%w: create returned status %d", ErrIndexFailed, res.StatusCode)
	}
	return nil
}
