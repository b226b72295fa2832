// Package mailer builds and sends the welcome email and the signature
// delivery email through an email.EmailSender. Bodies are built with the
// markup package and carry a plain-text alternative.
package mailer
