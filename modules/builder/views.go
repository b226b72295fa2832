package builder

import (
	"context"
	"encoding/json"
	"maps"
	"slices"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/internal/ui"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

const refresh = "@post('/builder/preview')"

// field is a text input bound to record.<key>.
type field struct {
	key, label, inputType string
}

var contactFields = []field{
	{"name", "Full name", "text"},
	{"email", "Email", "email"},
	{"title", "Job title", "text"},
	{"company", "Company", "text"},
	{"department", "Department", "text"},
	{"phone", "Phone", "tel"},
	{"mobilePhone", "Mobile", "tel"},
	{"officePhone", "Office phone", "tel"},
	{"website", "Website", "text"},
	{"address", "Address", "text"},
}

var colorFields = []field{
	{"primaryColor", "Primary colour", "color"},
	{"secondaryColor", "Secondary colour", "color"},
}

var socialPlatforms = []string{"linkedin", "twitter", "github", "instagram", "facebook"}

// Page renders the full builder page for state.
func Page(ctx context.Context, state Signals) templ.Component {
	rec := state.Record.Sanitize()

	form := markup.El("div",
		input("title", "Signature title", "text"),
		templatePicker(),
	)
	for _, f := range contactFields {
		form.Append(input("record."+f.key, f.label, f.inputType))
	}
	for _, f := range colorFields {
		form.Append(input("record."+f.key, f.label, f.inputType))
	}
	for _, p := range socialPlatforms {
		form.Append(input("record.socialLinks."+p, p, "url"))
	}
	form.Append(
		markup.El("div").Attr("id", "builder-errors"),
		ui.Button("Save signature").Attr("type", "button").Attr("data-on-click", "@post('/builder/save')"),
	)

	preview := markup.El("section",
		markup.El("h2", markup.Text("Preview")).Css("font-size", "18px"),
		markup.El("div", previewNode(ctx, rec)).
			Attr("id", "signature-preview").
			Css("border", "1px solid #e2e8f0").
			Css("padding", "16px"),
		markup.El("h2", markup.Text("Plain text")).Css("font-size", "18px"),
		markup.El("pre", markup.Text(signature.PlainText(rec))).Attr("id", "signature-text"),
	)
	if state.SignatureID != "" {
		base := "/api/signatures/" + state.SignatureID
		preview.Append(markup.El("p",
			ui.Link("Download HTML", base+"/download"),
			markup.Text(" | "),
			ui.Link("vCard", base+"/vcard"),
			markup.Text(" | "),
			ui.Link("Plain text", base+"/text"),
		))
	}

	return ui.Page("Signature builder",
		ui.Heading("Signature builder"),
		markup.El("div", form, preview).
			Attr("data-signals", signalsJSON(state)).
			Css("display", "grid").
			Css("grid-template-columns", "1fr 1fr").
			Css("gap", "24px"),
	)
}

// Preview renders the signature of rec, or the not-found fallback for an
// unknown template.
func Preview(ctx context.Context, rec signature.ContactRecord) templ.Component {
	return markup.Component(previewNode(ctx, rec))
}

func previewNode(ctx context.Context, rec signature.ContactRecord) markup.Node {
	node, _ := signature.Render(ctx, rec.TemplateID, rec)
	return node
}

// PlainText renders the text alternative of rec.
func PlainText(rec signature.ContactRecord) templ.Component {
	return markup.Component(markup.Text(signature.PlainText(rec)))
}

// Errors lists validation messages; nil renders nothing.
func Errors(ve handler.ValidationError) templ.Component {
	list := markup.El("ul").Css("padding", "0").Css("list-style", "none")
	for _, field := range slices.Sorted(maps.Keys(ve)) {
		for _, msg := range ve[field] {
			list.Append(markup.El("li", ui.FieldError(field+": "+msg)))
		}
	}
	return markup.Component(list)
}

func input(signal, label, inputType string) *markup.Element {
	return markup.El("div",
		markup.El("label", markup.Text(label)).Attr("for", signal),
		markup.El("input").
			Attr("id", signal).
			Attr("type", inputType).
			Attr("data-bind", signal).
			Attr("data-on-input__debounce.300ms", refresh).
			Css("display", "block").
			Css("width", "100%"),
	).Css("margin-bottom", "8px")
}

func templatePicker() *markup.Element {
	sel := markup.El("select").
		Attr("id", "record.templateId").
		Attr("data-bind", "record.templateId").
		Attr("data-on-change", refresh)
	for _, meta := range signature.Templates() {
		sel.Append(markup.El("option", markup.Text(meta.Name+" - "+meta.Description)).Attr("value", meta.ID))
	}
	return markup.El("div",
		markup.El("label", markup.Text("Template")).Attr("for", "record.templateId"),
		sel,
	).Css("margin-bottom", "8px")
}

// signalsJSON spells out every bound signal so data-bind never creates one
// with the wrong type.
func signalsJSON(state Signals) string {
	rec := state.Record
	record := map[string]any{"templateId": rec.TemplateID}
	values := map[string]string{
		"name": rec.Name, "email": rec.Email, "title": rec.Title, "company": rec.Company,
		"department": rec.Department, "phone": rec.Phone, "mobilePhone": rec.MobilePhone,
		"officePhone": rec.OfficePhone, "website": rec.Website, "address": rec.Address,
		"primaryColor": rec.PrimaryColor, "secondaryColor": rec.SecondaryColor,
		"logoData": rec.LogoData,
	}
	for k, v := range values {
		record[k] = v
	}
	social := make(map[string]string, len(socialPlatforms))
	for _, p := range socialPlatforms {
		social[p] = rec.SocialLinks[p]
	}
	record["socialLinks"] = social

	b, _ := json.Marshal(map[string]any{
		"signatureId": state.SignatureID,
		"title":       state.Title,
		"record":      record,
	})
	return string(b)
}
