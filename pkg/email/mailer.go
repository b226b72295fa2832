package email

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/validator"
)

// EmailSender delivers a single email.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams describes an outgoing email.
type SendEmailParams struct {
	SendTo   string `json:"send_to"`
	Subject  string `json:"subject"`
	BodyHTML string `json:"body_html"`
	BodyText string `json:"body_text,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// Validate checks the recipient, subject and HTML body.
func (p SendEmailParams) Validate() error {
	err := validator.Apply(
		validator.RequiredString("SendTo", strings.TrimSpace(p.SendTo)),
		validator.ValidEmail("SendTo", strings.TrimSpace(p.SendTo)),
		validator.RequiredString("Subject", strings.TrimSpace(p.Subject)),
		validator.MaxLenString("Subject", p.Subject, 998),
		validator.RequiredString("BodyHTML", strings.TrimSpace(p.BodyHTML)),
	)
	if err != nil {
		return errors.Join(ErrInvalidParams, err)
	}
	return nil
}

// New returns the Postmark sender when configured and the dev sender otherwise.
func New(cfg Config) (EmailSender, error) {
	if cfg.UsePostmark() {
		return NewPostmarkClient(cfg)
	}
	return NewDevSender(cfg.DevDir), nil
}
