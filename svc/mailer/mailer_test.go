package mailer_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/email"
	"github.com/dmitrymomot/signaturecraft/svc/mailer"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendEmail(ctx context.Context, params email.SendEmailParams) error {
	return m.Called(ctx, params).Error(0)
}

func TestWelcome(t *testing.T) {
	t.Parallel()

	msg, err := mailer.Welcome(context.Background(), "SignatureCraft", "Jane <b>", "https://app.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "Welcome to SignatureCraft", msg.Subject)
	assert.Contains(t, msg.HTML, `href="https://app.example.com/builder"`)
	assert.Contains(t, msg.HTML, "Hi Jane &lt;b&gt;,")
	assert.Contains(t, msg.Text, "Open the builder: https://app.example.com/builder")
}

func TestSignatureDelivery(t *testing.T) {
	t.Parallel()

	msg, err := mailer.SignatureDelivery(context.Background(), "SignatureCraft", "Work", `<table><tr><td>Jane</td></tr></table>`, "-- \nJane")
	require.NoError(t, err)
	assert.Equal(t, "Your email signature: Work", msg.Subject)
	assert.Contains(t, msg.HTML, `<table><tr><td>Jane</td></tr></table>`)
	assert.Contains(t, msg.Text, "-- \nJane")
}

func TestMailer_SendSignature(t *testing.T) {
	t.Parallel()

	rec := signature.ContactRecord{Name: "Jane Doe", Email: "jane@acme.io", TemplateID: "classic"}

	t.Run("sends rendered signature", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.MatchedBy(func(p email.SendEmailParams) bool {
			return p.SendTo == "jane@acme.io" && p.Tag == "signature" && strings.Contains(p.BodyText, "Jane Doe") &&
				strings.Contains(p.BodyHTML, "Jane Doe")
		})).Return(nil).Once()

		m := mailer.New(sender, "SignatureCraft", "http://localhost", nil)
		require.NoError(t, m.SendSignature(context.Background(), "jane@acme.io", "Work", rec, signature.ClientGmail))
		sender.AssertExpectations(t)
	})

	t.Run("wraps sender errors", func(t *testing.T) {
		t.Parallel()
		sender := &mockSender{}
		sender.On("SendEmail", mock.Anything, mock.Anything).Return(errors.New("boom")).Once()

		m := mailer.New(sender, "SignatureCraft", "http://localhost", nil)
		err := m.SendWelcome(context.Background(), "jane@acme.io", "Jane")
		assert.ErrorIs(t, err, mailer.ErrSendFailed)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()
		m := mailer.New(&mockSender{}, "SignatureCraft", "http://localhost", nil)
		bad := rec
		bad.TemplateID = "nope"
		assert.ErrorIs(t, m.SendSignature(context.Background(), "jane@acme.io", "", bad, signature.ClientGmail), signature.ErrTemplateNotFound)
	})
}
