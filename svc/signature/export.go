package signature

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// Client is an email client the signature is exported for.
type Client string

// Supported email clients.
const (
	ClientOutlook   Client = "outlook"
	ClientGmail     Client = "gmail"
	ClientAppleMail Client = "apple_mail"
)

// Clients returns every supported client.
func Clients() []Client {
	return []Client{ClientOutlook, ClientGmail, ClientAppleMail}
}

// ParseClient converts a client name to a Client. An empty name selects Gmail.
func ParseClient(s string) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ClientGmail):
		return ClientGmail, nil
	case string(ClientOutlook):
		return ClientOutlook, nil
	case string(ClientAppleMail), "applemail", "apple":
		return ClientAppleMail, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownClient, s)
}

// Export serializes the signature for pasting into the given client's composer.
// Every client currently receives the same markup; the preview uses the same tree.
func Export(ctx context.Context, templateID string, rec ContactRecord, client Client) (string, error) {
	if !isKnownClient(client) {
		return "", fmt.Errorf("%w: %q", ErrUnknownClient, client)
	}

	node, err := Render(ctx, templateID, rec)
	if err != nil {
		return "", err
	}

	html, err := markup.String(node)
	if err != nil {
		return "", errors.Join(ErrExportFailed, err)
	}
	return html, nil
}

// ExportDocument wraps the exported signature into a standalone HTML document
// suitable for downloading.
func ExportDocument(ctx context.Context, templateID string, rec ContactRecord, client Client) (string, error) {
	if !isKnownClient(client) {
		return "", fmt.Errorf("%w: %q", ErrUnknownClient, client)
	}

	node, err := Render(ctx, templateID, rec)
	if err != nil {
		return "", err
	}

	title := strings.TrimSpace(rec.Name)
	if title == "" {
		title = PlaceholderName
	}

	html, err := markup.String(markup.Document(title+" - email signature", node))
	if err != nil {
		return "", errors.Join(ErrExportFailed, err)
	}
	return html, nil
}

// PlainText renders the record as a plain-text signature for text-only email
// bodies. Empty fields are skipped.
func PlainText(rec ContactRecord) string {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = PlaceholderName
	}
	email := strings.TrimSpace(rec.Email)
	if email == "" {
		email = PlaceholderEmail
	}

	lines := []string{name}
	if l := joinNonEmpty(" | ", rec.Title, rec.Company); l != "" {
		lines = append(lines, l)
	}
	if d := strings.TrimSpace(rec.Department); d != "" {
		lines = append(lines, d)
	}
	for _, item := range phoneItems(rec) {
		lines = append(lines, item.label+": "+item.text)
	}
	lines = append(lines, "E: "+email)
	if w, ok := websiteItem(rec); ok {
		lines = append(lines, "W: "+w.href)
	}
	if a := strings.TrimSpace(rec.Address); a != "" {
		lines = append(lines, a)
	}

	return "-- \n" + strings.Join(lines, "\n")
}

func isKnownClient(c Client) bool {
	for _, known := range Clients() {
		if c == known {
			return true
		}
	}
	return false
}
