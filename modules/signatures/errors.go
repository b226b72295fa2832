package signatures

import (
	"errors"

	"github.com/google/uuid"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/auth"
	"github.com/dmitrymomot/signaturecraft/svc/repository"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

var errorRules = []handler.ErrorRule{
	{Target: repository.ErrNotFound, As: handler.ErrNotFound},
	{Target: repository.ErrConflict, As: handler.ErrConflict},
	{Target: signature.ErrTemplateNotFound, As: handler.ErrNotFound},
	{Target: signature.ErrUnknownClient, As: handler.ValidationError{"client": {"unknown email client"}}},
	{Target: auth.ErrUserNotFound, As: handler.ErrUnauthorized},
	{Target: auth.ErrUnauthenticated, As: handler.ErrUnauthorized},
}

// fail renders err as the JSON envelope, logging errors that map to 5xx.
func (m *Module) fail(ctx handler.Context, err error) handler.Response {
	mapped := handler.MapError(err, errorRules...)
	if handler.StatusCode(mapped) >= 500 {
		m.log.ErrorContext(ctx, "signature request failed",
			logger.Component("signatures"),
			logger.Error(err),
		)
	}
	return handler.JSONError(mapped)
}

// parseID parses a path id; malformed ids read as not found.
func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errors.Join(repository.ErrNotFound, err)
	}
	return id, nil
}
