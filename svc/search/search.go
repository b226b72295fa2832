package search

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/svc/repository"
)

// Document is the searchable projection of a signature.
type Document struct {
	ID         string `json:"id"`
	OwnerID    string `json:"owner_id"`
	Title      string `json:"title"`
	Name       string `json:"name"`
	Company    string `json:"company"`
	JobTitle   string `json:"job_title"`
	TemplateID string `json:"template_id"`
}

// NewDocument projects sig into a Document.
func NewDocument(sig repository.Signature) Document {
	return Document{
		ID:         sig.ID.String(),
		OwnerID:    sig.OwnerID.String(),
		Title:      sig.Title,
		Name:       sig.Record.Name,
		Company:    sig.Record.Company,
		JobTitle:   sig.Record.Title,
		TemplateID: sig.Record.TemplateID,
	}
}

// Index keeps signatures searchable.
type Index interface {
	Index(ctx context.Context, sig repository.Signature) error
	Remove(ctx context.Context, id uuid.UUID) error
	// Search returns the ids of the owner's signatures matching q, best first.
	Search(ctx context.Context, ownerID uuid.UUID, q string) ([]uuid.UUID, error)
}

// Noop is used when search is disabled. Search returns ErrDisabled so callers
// fall back to Filter.
type Noop struct{}

func (Noop) Index(context.Context, repository.Signature) error { return nil }
func (Noop) Remove(context.Context, uuid.UUID) error           { return nil }
func (Noop) Search(context.Context, uuid.UUID, string) ([]uuid.UUID, error) {
	return nil, ErrDisabled
}

// Filter returns the signatures whose title, name, company, job title or
// template contain every word of q, case-insensitively. An empty query keeps
// everything.
func Filter(sigs []repository.Signature, q string) []repository.Signature {
	terms := strings.Fields(strings.ToLower(q))
	if len(terms) == 0 {
		return sigs
	}
	var out []repository.Signature
	for _, s := range sigs {
		d := NewDocument(s)
		hay := strings.ToLower(strings.Join([]string{d.Title, d.Name, d.Company, d.JobTitle, d.TemplateID}, " "))
		match := true
		for _, t := range terms {
			if !strings.Contains(hay, t) {
				match = false
				break
			}
		}
		if match {
			out = append(out, s)
		}
	}
	return out
}
