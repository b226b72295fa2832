package signature

import (
	"context"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// TemplateClassic is the id of the classic template.
const TemplateClassic = "classic"

var classicPalette = palette{primary: "#000000", secondary: "#666666"}

var classic = staticRenderer{
	meta: Metadata{
		ID:          TemplateClassic,
		Name:        "Classic",
		Description: "Traditional layout with the logo beside stacked contact details.",
		Category:    "professional",
		Tags:        []string{"traditional", "logo", "simple"},
		Version:     "1.0.0",
		Author:      author,
	},
	render: renderClassic,
}

func renderClassic(ctx context.Context, rec ContactRecord) markup.Node {
	colors := classicPalette.resolve(rec)
	name, email := identity(ctx, TemplateClassic, rec)

	details := layoutTable(
		row(cell(markup.Text(name)).
			Css("color", colors.primary).
			Css("font-size", "16px").
			Css("font-weight", "bold").
			Css("line-height", "1.4")),
	)

	if line := joinNonEmpty(" | ", rec.Title, rec.Company); line != "" {
		details.Append(textRow(line, colors.secondary, "14px"))
	}
	if d := strings.TrimSpace(rec.Department); d != "" {
		details.Append(textRow(d, colors.secondary, "13px"))
	}

	items := phoneItems(rec)
	items = append(items, emailItem(email))
	if w, ok := websiteItem(rec); ok {
		items = append(items, w)
	}
	for _, item := range items {
		details.Append(row(cell(
			markup.Text(item.label+": "),
			link(item, colors.primary),
		).Css("color", colors.secondary).Css("font-size", "13px").Css("line-height", "1.4")))
	}

	if a := strings.TrimSpace(rec.Address); a != "" {
		details.Append(textRow(a, colors.secondary, "12px"))
	}

	outer := row()
	if strings.TrimSpace(rec.LogoData) != "" {
		outer.Append(cell(
			logoImage(rec.LogoData, name).
				Css("max-width", "100px").
				Css("max-height", "50px").
				Css("width", "auto").
				Css("height", "auto"),
		).Css("padding-right", "12px"))
	}
	outer.Append(cell(details))

	return layoutTable(outer)
}
