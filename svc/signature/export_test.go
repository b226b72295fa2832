package signature_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

var sample = signature.ContactRecord{
	Name:        "Sarah Johnson",
	Email:       "sarah@acme.com",
	Title:       "CTO",
	Company:     "Acme, Inc.",
	Department:  "Engineering",
	Phone:       "+1 555 0100",
	OfficePhone: "+1 555 0199",
	Website:     "acme.com",
	Address:     "1 Main St; Springfield",
}

func TestExportMatchesPreview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	for _, id := range signature.TemplateIDs() {
		node, err := signature.Render(ctx, id, sample)
		require.NoError(t, err)
		preview := markup.MustString(node)

		for _, client := range signature.Clients() {
			html, err := signature.Export(ctx, id, sample, client)
			require.NoError(t, err)
			assert.Equal(t, preview, html, "%s/%s", id, client)
		}
	}
}

func TestExportErrors(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := signature.Export(ctx, "nonexistent", sample, signature.ClientGmail)
	assert.ErrorIs(t, err, signature.ErrTemplateNotFound)

	_, err = signature.Export(ctx, "classic", sample, signature.Client("thunderbird"))
	assert.ErrorIs(t, err, signature.ErrUnknownClient)
}

func TestExportDocument(t *testing.T) {
	t.Parallel()

	doc, err := signature.ExportDocument(context.Background(), "modern", sample, signature.ClientOutlook)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Sarah Johnson - email signature</title>")
	assert.Contains(t, doc, "CTO at Acme, Inc.")
}

func TestParseClient(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    signature.Client
		wantErr bool
	}{
		{"", signature.ClientGmail, false},
		{"gmail", signature.ClientGmail, false},
		{"Outlook", signature.ClientOutlook, false},
		{"apple_mail", signature.ClientAppleMail, false},
		{"apple", signature.ClientAppleMail, false},
		{"lotus", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, err := signature.ParseClient(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, signature.ErrUnknownClient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	got := signature.PlainText(sample)
	want := strings.Join([]string{
		"-- ",
		"Sarah Johnson",
		"CTO | Acme, Inc.",
		"Engineering",
		"M: +1 555 0100",
		"O: +1 555 0199",
		"E: sarah@acme.com",
		"W: https://acme.com",
		"1 Main St; Springfield",
	}, "\n")
	assert.Equal(t, want, got)

	assert.Equal(t, "-- \nYour Name\nE: email@company.com", signature.PlainText(signature.ContactRecord{}))
}

func TestVCard(t *testing.T) {
	t.Parallel()

	card := signature.VCard(sample)
	assert.True(t, strings.HasPrefix(card, "BEGIN:VCARD\r\nVERSION:3.0\r\n"))
	assert.True(t, strings.HasSuffix(card, "END:VCARD\r\n"))
	assert.Contains(t, card, "FN:Sarah Johnson\r\n")
	assert.Contains(t, card, "N:Johnson;Sarah;;;\r\n")
	assert.Contains(t, card, "ORG:Acme\\, Inc.;Engineering\r\n")
	assert.Contains(t, card, "EMAIL;TYPE=INTERNET:sarah@acme.com\r\n")
	assert.Contains(t, card, "TEL;TYPE=CELL:+1 555 0100\r\n")
	assert.Contains(t, card, "URL:https://acme.com\r\n")
	assert.Contains(t, card, "ADR;TYPE=WORK:;;1 Main St\\; Springfield;;;;\r\n")

	minimal := signature.VCard(signature.ContactRecord{Name: "Cher"})
	assert.Contains(t, minimal, "N:Cher;;;;\r\n")
	assert.NotContains(t, minimal, "TITLE")
	assert.NotContains(t, minimal, "URL")
	assert.NotContains(t, minimal, "ADR")
}

func TestVCardQR(t *testing.T) {
	t.Parallel()

	img, err := signature.VCardQR(sample, 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img, "data:image/png;base64,"))
}
