package signature

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/qrcode"
)

// VCard renders the record as a vCard 3.0 contact card.
func VCard(rec ContactRecord) string {
	name := strings.TrimSpace(rec.Name)
	if name == "" {
		name = PlaceholderName
	}

	var b strings.Builder
	line := func(key, value string) {
		if value = strings.TrimSpace(value); value == "" {
			return
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(vcardEscape(value))
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	line("FN", name)
	b.WriteString("N:" + vcardName(name) + "\r\n")
	line("TITLE", rec.Title)
	if org := vcardEscapeList(rec.Company, rec.Department); org != "" {
		b.WriteString("ORG:" + org + "\r\n")
	}
	line("EMAIL;TYPE=INTERNET", rec.Email)
	line("TEL;TYPE=CELL", rec.PhoneNumber())
	line("TEL;TYPE=WORK", rec.OfficePhone)
	if w := NormalizeWebsiteURL(rec.Website); w != "" {
		line("URL", w)
	}
	if addr := strings.TrimSpace(rec.Address); addr != "" {
		// The free-form address goes in the street component.
		b.WriteString("ADR;TYPE=WORK:;;" + vcardEscape(addr) + ";;;;\r\n")
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}

// VCardQR encodes the vCard of rec as a PNG QR code data URI. Modules use the
// record's primary colour when it parses, black otherwise.
func VCardQR(rec ContactRecord, size int) (string, error) {
	var opts []qrcode.Option
	if c, err := qrcode.ParseHexColor(rec.PrimaryColor); err == nil {
		opts = append(opts, qrcode.WithForeground(c))
	}
	img, err := qrcode.GenerateBase64Image(VCard(rec), size, opts...)
	if err != nil {
		return "", errors.Join(ErrVCardFailed, err)
	}
	return img, nil
}

// vcardName builds the structured N value (family;given;;;) from a display name.
func vcardName(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return vcardEscape(name) + ";;;;"
	}
	family := parts[len(parts)-1]
	given := strings.Join(parts[:len(parts)-1], " ")
	return vcardEscape(family) + ";" + vcardEscape(given) + ";;;"
}

var vcardReplacer = strings.NewReplacer(`\`, `\\`, "\n", `\n`, ",", `\,`, ";", `\;`)

func vcardEscape(s string) string {
	return vcardReplacer.Replace(s)
}

func vcardEscapeList(values ...string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			kept = append(kept, vcardEscape(v))
		}
	}
	return strings.Join(kept, ";")
}
