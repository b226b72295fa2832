package mailer

import "errors"

var (
	ErrRenderFailed = errors.New("mailer: failed to render email")
	ErrSendFailed   = errors.New("mailer: failed to send email")
)
