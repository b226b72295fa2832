package signatures

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Save creates a signature when id is uuid.Nil and replaces the title and
// record of an existing one otherwise. New records are prefilled from the
// owner's profile. The record is sanitized and validated; validation failures
// are returned as handler.ValidationError.
func (m *Module) Save(ctx context.Context, ownerID, id uuid.UUID, title string, rec signature.ContactRecord) (*repository.Signature, error) {
	rec = rec.Sanitize()

	if id == uuid.Nil {
		if m.opts.Profiles != nil {
			p, err := m.opts.Profiles.Get(ctx, ownerID)
			switch {
			case err == nil:
				rec = p.Apply(rec)
			case !errors.Is(err, repository.ErrNotFound):
				return nil, err
			}
		}
		if err := validate(title, rec); err != nil {
			return nil, err
		}
		sig := &repository.Signature{
			ID:      uuid.New(),
			OwnerID: ownerID,
			Title:   titleOf(title, rec),
			Record:  rec,
		}
		if err := m.opts.Store.Create(ctx, sig); err != nil {
			return nil, err
		}
		m.index(ctx, *sig)
		m.log.InfoContext(ctx, "signature created",
			logger.Component("signatures"),
			logger.SignatureID(sig.ID),
			logger.TemplateID(sig.TemplateID()),
		)
		return sig, nil
	}

	sig, err := m.opts.Store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if err := validate(title, rec); err != nil {
		return nil, err
	}
	sig.Title = titleOf(title, rec)
	sig.Record = rec
	if err := m.opts.Store.Update(ctx, sig); err != nil {
		return nil, err
	}
	m.index(ctx, *sig)
	return sig, nil
}

// Get returns a signature of ownerID.
func (m *Module) Get(ctx context.Context, ownerID, id uuid.UUID) (*repository.Signature, error) {
	return m.opts.Store.Get(ctx, ownerID, id)
}
