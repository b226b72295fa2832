package signature

import (
	"context"
	"slices"
	"strings"

	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// DefaultTemplateID is used when a record does not select a template.
const DefaultTemplateID = TemplateClassic

// registry maps template ids to renderers. It is never modified after init.
var registry = map[string]Renderer{
	TemplateClassic:   classic,
	TemplateModern:    modern,
	TemplateMinimal:   minimal,
	TemplateCorporate: corporate,
}

// Lookup returns the renderer registered under id.
func Lookup(id string) (Renderer, error) {
	r, ok := registry[strings.TrimSpace(id)]
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return r, nil
}

// Render renders rec with the template registered under id. An empty id selects
// DefaultTemplateID. For an unknown id it returns ErrTemplateNotFound together
// with a renderable fallback node, so display callers can always show something.
func Render(ctx context.Context, id string, rec ContactRecord) (markup.Node, error) {
	if strings.TrimSpace(id) == "" {
		id = DefaultTemplateID
	}
	r, err := Lookup(id)
	if err != nil {
		return NotFoundNode(id), err
	}
	return r.Render(ctx, rec), nil
}

// NotFoundNode is the fallback shown in place of an unknown template.
func NotFoundNode(id string) markup.Node {
	return layoutTable(row(
		cell(markup.Text("Template not found")).
			Attr("data-template-id", id).
			Css("color", "#b91c1c").
			Css("font-size", "13px").
			Css("padding", "8px"),
	))
}

// Templates returns the metadata of every registered template ordered by id.
func Templates() []Metadata {
	out := make([]Metadata, 0, len(registry))
	for _, id := range TemplateIDs() {
		out = append(out, registry[id].Metadata())
	}
	return out
}

// TemplateIDs returns the registered template ids in sorted order.
func TemplateIDs() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
