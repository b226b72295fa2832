package signature

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// TemplateCorporate is the id of the corporate template.
const TemplateCorporate = "corporate"

var (
	corporatePalette = palette{primary: "#1a365d", secondary: "#4a5568"}
	// accent colours of the divider, labels and social badges.
	corporateAccent = palette{primary: "#2563eb", secondary: "#64748b"}
)

// GenericSocialGlyph labels social links whose platform is not recognised.
const GenericSocialGlyph = "\U0001F517"

var socialGlyphs = map[string]string{
	"linkedin":  "in",
	"twitter":   "X",
	"x":         "X",
	"github":    "GH",
	"facebook":  "f",
	"instagram": "IG",
	"youtube":   "YT",
}

var corporate = staticRenderer{
	meta: Metadata{
		ID:          TemplateCorporate,
		Name:        "Corporate",
		Description: "Two-column layout with a circular avatar, labelled contacts and social badges.",
		Category:    "business",
		Tags:        []string{"avatar", "social", "two-column"},
		Version:     "1.0.0",
		Author:      author,
	},
	render: renderCorporate,
}

// SocialGlyph returns the badge label for a social platform key.
func SocialGlyph(platform string) string {
	if g, ok := socialGlyphs[strings.ToLower(strings.TrimSpace(platform))]; ok {
		return g
	}
	return GenericSocialGlyph
}

func renderCorporate(ctx context.Context, rec ContactRecord) markup.Node {
	colors := corporatePalette.resolve(rec)
	accent := corporateAccent.resolve(rec)
	name, email := identity(ctx, TemplateCorporate, rec)

	details := layoutTable(
		row(cell(markup.Text(name)).
			Css("color", colors.primary).
			Css("font-size", "18px").
			Css("font-weight", "bold").
			Css("line-height", "1.3")),
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
	for i, item := range items {
		c := cell(
			markup.El("span", markup.Text(item.label+" ")).
				Css("color", accent.primary).
				Css("font-weight", "bold"),
			link(item, colors.secondary),
		).Css("font-size", "13px").Css("line-height", "1.5")
		if i == 0 {
			c.Css("padding-top", "6px")
		}
		details.Append(row(c))
	}

	if a := strings.TrimSpace(rec.Address); a != "" {
		details.Append(textRow(a, accent.secondary, "12px"))
	}

	if rec.HasSocialLinks() {
		details.Append(row(corporateSocial(rec.SocialLinks, accent)))
	}

	return layoutTable(row(
		cell(corporateAvatar(rec, name, colors)).
			Css("vertical-align", "middle").
			Css("padding-right", "16px"),
		cell(details).
			Css("border-left", "2px solid "+accent.primary).
			Css("padding-left", "16px"),
	))
}

// corporateAvatar renders the logo as a circle, or an initials badge when no
// logo is set.
func corporateAvatar(rec ContactRecord, name string, colors palette) markup.Node {
	if strings.TrimSpace(rec.LogoData) != "" {
		return logoImage(rec.LogoData, name).
			Attr("width", "74").
			Attr("height", "74").
			Css("width", "74px").
			Css("height", "74px").
			Css("border-radius", "50%").
			Css("object-fit", "cover")
	}

	return layoutTable(row(
		markup.El("td", markup.Text(Initials(name))).
			Attr("width", "74").
			Attr("height", "74").
			Attr("align", "center").
			Attr("valign", "middle").
			Css("width", "74px").
			Css("height", "74px").
			Css("border-radius", "50%").
			Css("background-color", colors.primary).
			Css("color", "#ffffff").
			Css("font-size", "26px").
			Css("font-weight", "bold").
			Css("text-align", "center").
			Css("vertical-align", "middle"),
	))
}

// corporateSocial renders one badge per non-empty link, ordered by platform key.
func corporateSocial(links map[string]string, accent palette) *markup.Element {
	platforms := make([]string, 0, len(links))
	for k, v := range links {
		if strings.TrimSpace(v) != "" {
			platforms = append(platforms, k)
		}
	}
	slices.Sort(platforms)

	c := cell().Css("padding-top", "8px")
	for _, p := range platforms {
		c.Append(markup.El("a", markup.Text(SocialGlyph(p))).
			Attr("href", NormalizeWebsiteURL(links[p])).
			Attr("title", p).
			Css("display", "inline-block").
			Css("width", "24px").
			Css("height", "24px").
			Css("line-height", "24px").
			Css("text-align", "center").
			Css("background-color", accent.primary).
			Css("color", "#ffffff").
			Css("border-radius", "4px").
			Css("font-size", "11px").
			Css("font-weight", "bold").
			Css("text-decoration", "none").
			Css("margin-right", "6px"))
	}
	return c
}
