package signature

import (
	"context"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// TemplateModern is the id of the modern template.
const TemplateModern = "modern"

var modernPalette = palette{primary: "#000000", secondary: "#666666"}

var modern = staticRenderer{
	meta: Metadata{
		ID:          TemplateModern,
		Name:        "Modern",
		Description: "Accent bar with a logo on top and a single line of contact links.",
		Category:    "creative",
		Tags:        []string{"accent", "logo", "inline"},
		Version:     "1.0.0",
		Author:      author,
	},
	render: renderModern,
}

func renderModern(ctx context.Context, rec ContactRecord) markup.Node {
	colors := modernPalette.resolve(rec)
	name, email := identity(ctx, TemplateModern, rec)

	body := layoutTable()

	if strings.TrimSpace(rec.LogoData) != "" {
		body.Append(row(cell(
			logoImage(rec.LogoData, name).
				Attr("width", "80").
				Css("width", "80px").
				Css("height", "auto"),
		).Css("padding-bottom", "8px")))
	}

	body.Append(row(cell(markup.Text(name)).
		Css("color", colors.primary).
		Css("font-size", "18px").
		Css("font-weight", "bold").
		Css("line-height", "1.3")))

	if line := joinNonEmpty(" at ", rec.Title, rec.Company); line != "" {
		body.Append(textRow(line, colors.secondary, "14px"))
	}
	if d := strings.TrimSpace(rec.Department); d != "" {
		body.Append(textRow(d, colors.secondary, "13px"))
	}

	items := []contactItem{emailItem(email)}
	items = append(items, phoneItems(rec)...)
	if w, ok := websiteItem(rec); ok {
		items = append(items, w)
	}

	contacts := cell().
		Css("color", colors.secondary).
		Css("font-size", "13px").
		Css("line-height", "1.4").
		Css("padding-top", "6px")
	for i, item := range items {
		if i > 0 {
			contacts.Append(markup.Text(" • "))
		}
		contacts.Append(link(item, colors.primary))
	}
	body.Append(row(contacts))

	if a := strings.TrimSpace(rec.Address); a != "" {
		body.Append(textRow(a, colors.secondary, "12px"))
	}

	return layoutTable(row(
		cell(body).
			Css("border-left", "3px solid "+colors.primary).
			Css("padding-left", "12px"),
	))
}
