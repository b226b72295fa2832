package signature

import (
	"context"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/logger"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

const (
	fontFamily = "Arial, Helvetica, sans-serif"
	author     = "SignatureCraft"
)

// Metadata describes a registered template.
type Metadata struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	Version     string   `json:"version"`
	Author      string   `json:"author"`
}

// Renderer maps a contact record to a markup tree for one visual style.
// Render must be deterministic and must not fail for any input.
type Renderer interface {
	Metadata() Metadata
	Render(ctx context.Context, rec ContactRecord) markup.Node
}

// palette holds the two brand colours of a template.
type palette struct {
	primary   string
	secondary string
}

// resolve returns the record colours, falling back to the template defaults.
func (p palette) resolve(rec ContactRecord) palette {
	out := p
	if c := strings.TrimSpace(rec.PrimaryColor); c != "" {
		out.primary = c
	}
	if c := strings.TrimSpace(rec.SecondaryColor); c != "" {
		out.secondary = c
	}
	return out
}

// identity returns the name and email to display, substituting placeholders
// and logging a warning when either is missing.
func identity(ctx context.Context, templateID string, rec ContactRecord) (name, email string) {
	name = strings.TrimSpace(rec.Name)
	email = strings.TrimSpace(rec.Email)

	var missing []string
	if name == "" {
		name = PlaceholderName
		missing = append(missing, "name")
	}
	if email == "" {
		email = PlaceholderEmail
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		logger.FromContext(ctx).WarnContext(ctx, "rendering signature with placeholder values",
			logger.Component("signature"),
			logger.TemplateID(templateID),
			logger.Fields(missing...),
		)
	}
	return name, email
}

// joinNonEmpty joins the trimmed non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

// contactItem is one clickable or plain contact channel.
type contactItem struct {
	label string
	href  string
	text  string
}

// phoneItems returns the phone channels that are present, primary first.
func phoneItems(rec ContactRecord) []contactItem {
	var items []contactItem
	if p := rec.PhoneNumber(); p != "" {
		items = append(items, contactItem{label: "M", href: TelURL(p), text: p})
	}
	if p := strings.TrimSpace(rec.OfficePhone); p != "" {
		items = append(items, contactItem{label: "O", href: TelURL(p), text: p})
	}
	return items
}

func emailItem(email string) contactItem {
	return contactItem{label: "E", href: MailtoURL(email), text: email}
}

// websiteItem returns the website channel and whether it is present.
func websiteItem(rec ContactRecord) (contactItem, bool) {
	w := strings.TrimSpace(rec.Website)
	if w == "" {
		return contactItem{}, false
	}
	return contactItem{label: "W", href: NormalizeWebsiteURL(w), text: DisplayWebsite(w)}, true
}

// layoutTable returns a presentation table with spacing reset, as email clients
// ignore most CSS on tables.
func layoutTable(rows ...markup.Node) *markup.Element {
	return markup.El("table", rows...).
		Attr("cellpadding", "0").
		Attr("cellspacing", "0").
		Attr("border", "0").
		Attr("role", "presentation").
		Css("border-collapse", "collapse").
		Css("font-family", fontFamily)
}

func row(cells ...markup.Node) *markup.Element {
	return markup.El("tr", cells...)
}

func cell(children ...markup.Node) *markup.Element {
	return markup.El("td", children...).Css("vertical-align", "top")
}

// textRow is a single-cell row holding one line of text.
func textRow(text, color, size string) *markup.Element {
	return row(cell(markup.Text(text)).
		Css("color", color).
		Css("font-size", size).
		Css("line-height", "1.4"))
}

func link(item contactItem, color string) *markup.Element {
	return markup.El("a", markup.Text(item.text)).
		Attr("href", item.href).
		Css("color", color).
		Css("text-decoration", "none")
}

func logoImage(src, alt string) *markup.Element {
	return markup.El("img").
		Attr("src", strings.TrimSpace(src)).
		Attr("alt", alt).
		Css("display", "block").
		Css("border", "0")
}

// staticRenderer implements Renderer with a plain function.
type staticRenderer struct {
	meta   Metadata
	render func(ctx context.Context, rec ContactRecord) markup.Node
}

func (s staticRenderer) Metadata() Metadata { return s.meta }

func (s staticRenderer) Render(ctx context.Context, rec ContactRecord) markup.Node {
	return s.render(ctx, rec)
}
