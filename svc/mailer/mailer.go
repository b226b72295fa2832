package mailer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/signaturecraft/pkg/email"
	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

// Mailer sends the application's transactional emails.
type Mailer struct {
	sender  email.EmailSender
	appName string
	baseURL string
	log     *slog.Logger
}

// New creates a Mailer.
func New(sender email.EmailSender, appName, baseURL string, log *slog.Logger) *Mailer {
	if log == nil {
		log = slog.Default()
	}
	return &Mailer{sender: sender, appName: appName, baseURL: baseURL, log: log}
}

// SendWelcome greets a newly registered user.
func (m *Mailer) SendWelcome(ctx context.Context, to, name string) error {
	msg, err := Welcome(ctx, m.appName, name, m.baseURL)
	if err != nil {
		return err
	}
	return m.send(ctx, to, msg, "welcome")
}

// SendSignature renders rec with the template for client and mails it to to.
func (m *Mailer) SendSignature(ctx context.Context, to, title string, rec signature.ContactRecord, client signature.Client) error {
	html, err := signature.Export(ctx, rec.TemplateID, rec, client)
	if err != nil {
		return err
	}
	msg, err := SignatureDelivery(ctx, m.appName, title, html, signature.PlainText(rec))
	if err != nil {
		return err
	}
	return m.send(ctx, to, msg, "signature")
}

func (m *Mailer) send(ctx context.Context, to string, msg Message, tag string) error {
	err := m.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   to,
		Subject:  msg.Subject,
		BodyHTML: msg.HTML,
		BodyText: msg.Text,
		Tag:      tag,
	})
	if err != nil {
		m.log.ErrorContext(ctx, "failed to send email",
			logger.Component("mailer"),
			logger.Event(tag),
			logger.Error(err),
		)
		return errors.Join(ErrSendFailed, err)
	}
	m.log.InfoContext(ctx, "email sent",
		logger.Component("mailer"),
		logger.Event(tag),
	)
	return nil
}
