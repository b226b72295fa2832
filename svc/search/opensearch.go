package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/opensearch"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
)

const maxResults = 50

// mapping of the signatures index.
var mapping = []byte(`{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "owner_id":    {"type": "keyword"},
      "title":       {"type": "text"},
      "name":        {"type": "text"},
      "company":     {"type": "text"},
      "job_title":   {"type": "text"},
      "template_id": {"type": "keyword"}
    }
  }
}`)

// OpenSearch is an Index backed by an OpenSearch cluster.
type OpenSearch struct {
	transport opensearchapi.Transport
	index     string
	log       *slog.Logger
}

// NewOpenSearch creates the index when missing and returns an Index writing
// to it. *opensearch.Client satisfies opensearchapi.Transport.
func NewOpenSearch(ctx context.Context, transport opensearchapi.Transport, index string, log *slog.Logger) (*OpenSearch, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := opensearch.EnsureIndex(ctx, transport, index, mapping); err != nil {
		return nil, err
	}
	return &OpenSearch{transport: transport, index: index, log: log}, nil
}

var _ Index = (*OpenSearch)(nil)

func (o *OpenSearch) Index(ctx context.Context, sig repository.Signature) error {
	body, err := json.Marshal(NewDocument(sig))
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	res, err := opensearchapi.IndexRequest{
		Index:      o.index,
		DocumentID: sig.ID.String(),
		Body:       bytes.NewReader(body),
		Refresh:    "true",
	}.Do(ctx, o.transport)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("%w: status %d", ErrIndexFailed, res.StatusCode)
	}
	return nil
}

func (o *OpenSearch) Remove(ctx context.Context, id uuid.UUID) error {
	res, err := opensearchapi.DeleteRequest{
		Index:      o.index,
		DocumentID: id.String(),
		Refresh:    "true",
	}.Do(ctx, o.transport)
	if err != nil {
		return errors.Join(ErrIndexFailed, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: status %d", ErrIndexFailed, res.StatusCode)
	}
	return nil
}

func (o *OpenSearch) Search(ctx context.Context, ownerID uuid.UUID, q string) ([]uuid.UUID, error) {
	query := map[string]any{
		"size":    maxResults,
		"_source": []string{"id"},
		"query": map[string]any{
			"bool": map[string]any{
				"filter": []any{
					map[string]any{"term": map[string]any{"owner_id": ownerID.String()}},
				},
				"must": []any{
					map[string]any{"multi_match": map[string]any{
						"query":     q,
						"fields":    []string{"title^2", "name^2", "company", "job_title", "template_id"},
						"fuzziness": "AUTO",
					}},
				},
			},
		},
	}
	body, err := json.Marshal(query)
	if err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}

	res, err := opensearchapi.SearchRequest{
		Index: []string{o.index},
		Body:  bytes.NewReader(body),
	}.Do(ctx, o.transport)
	if err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("%w: status %d", ErrSearchFailed, res.StatusCode)
	}

	var out struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, errors.Join(ErrSearchFailed, err)
	}

	ids := make([]uuid.UUID, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		id, err := uuid.Parse(h.ID)
		if err != nil {
			o.log.WarnContext(ctx, "skipping search hit with invalid id",
				logger.Component("search"),
				slog.String("hit_id", h.ID),
			)
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
