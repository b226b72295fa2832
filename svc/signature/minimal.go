package signature

import (
	"context"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// TemplateMinimal is the id of the minimal template.
const TemplateMinimal = "minimal"

var minimalPalette = palette{primary: "#000000", secondary: "#666666"}

var minimal = staticRenderer{
	meta: Metadata{
		ID:          TemplateMinimal,
		Name:        "Minimal",
		Description: "Compact text-first signature with a small square logo.",
		Category:    "minimal",
		Tags:        []string{"compact", "text", "clean"},
		Version:     "1.0.0",
		Author:      author,
	},
	render: renderMinimal,
}

func renderMinimal(ctx context.Context, rec ContactRecord) markup.Node {
	colors := minimalPalette.resolve(rec)
	name, email := identity(ctx, TemplateMinimal, rec)

	text := layoutTable(
		row(cell(markup.Text(name)).
			Css("color", colors.primary).
			Css("font-size", "14px").
			Css("font-weight", "bold").
			Css("line-height", "1.4")),
	)

	if line := joinNonEmpty(", ", rec.Title, rec.Company); line != "" {
		text.Append(textRow(line, colors.secondary, "12px"))
	}

	contacts := cell(link(emailItem(email), colors.secondary)).
		Css("font-size", "12px").
		Css("line-height", "1.4")
	for _, item := range phoneItems(rec) {
		contacts.Append(markup.Text(" / "), link(item, colors.secondary))
	}
	if w, ok := websiteItem(rec); ok {
		contacts.Append(markup.Text(" / "), link(w, colors.secondary))
	}
	text.Append(row(contacts))

	outer := row()
	if strings.TrimSpace(rec.LogoData) != "" {
		outer.Append(cell(
			logoImage(rec.LogoData, name).
				Attr("width", "48").
				Attr("height", "48").
				Css("width", "48px").
				Css("height", "48px").
				Css("object-fit", "contain"),
		).Css("padding-right", "10px"))
	}
	outer.Append(cell(text))

	return layoutTable(outer)
}
