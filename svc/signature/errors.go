package signature

import "errors"

var (
	// ErrTemplateNotFound is returned when a template id is not registered.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrUnknownClient is returned for an unsupported email client.
	ErrUnknownClient = errors.New("unknown email client")

	// ErrExportFailed wraps serialization failures.
	ErrExportFailed = errors.New("failed to export signature")

	// ErrVCardFailed wraps vCard QR generation failures.
	ErrVCardFailed = errors.New("failed to generate vcard")
)
