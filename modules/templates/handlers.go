package templates

import (
	"errors"
	"strings"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
	"github.com/dmitrymomot/signaturecraft/svc/samples"
	"github.com/dmitrymomot/signaturecraft/svc/signature"
)

type listRequest struct {
	Persona string `query:"persona"`
}

// Summary is a catalogue entry: template metadata plus a rendered sample.
type Summary struct {
	signature.Metadata
	Persona string `json:"persona"`
	Preview string `json:"preview"`
}

type previewRequest struct {
	ID      string `path:"id"`
	Persona string `query:"persona"`
	Name    string `query:"name"`
	Email   string `query:"email"`
	Title   string `query:"title"`
	Company string `query:"company"`
}

type renderRequest struct {
	TemplateID string                  `json:"templateId"`
	Client     string                  `json:"client"`
	Record     signature.ContactRecord `json:"record"`
}

// RenderResult is the response of POST /api/render.
type RenderResult struct {
	TemplateID string           `json:"templateId"`
	Client     signature.Client `json:"client"`
	HTML       string           `json:"html"`
	PlainText  string           `json:"plainText"`
	Complete   bool             `json:"complete"`
}

func (m *Module) list(ctx handler.Context, req listRequest) handler.Response {
	metas := signature.Templates()
	out := make([]Summary, 0, len(metas))
	for _, meta := range metas {
		p, err := persona(req.Persona, meta.ID)
		if err != nil {
			return m.fail(ctx, err)
		}
		html, err := signature.Export(ctx, meta.ID, p.Record, signature.ClientGmail)
		if err != nil {
			return m.fail(ctx, err)
		}
		out = append(out, Summary{Metadata: meta, Persona: p.ID, Preview: html})
	}
	return handler.JSON(out)
}

// preview renders a template as an HTML fragment. Query fields override the
// sample persona.
func (m *Module) preview(ctx handler.Context, req previewRequest) handler.Response {
	if _, err := signature.Lookup(req.ID); err != nil {
		return m.fail(ctx, err)
	}
	p, err := persona(req.Persona, req.ID)
	if err != nil {
		return m.fail(ctx, err)
	}

	rec := p.Record
	for _, f := range []struct {
		dst *string
		val string
	}{
		{&rec.Name, req.Name},
		{&rec.Email, req.Email},
		{&rec.Title, req.Title},
		{&rec.Company, req.Company},
	} {
		if v := strings.TrimSpace(f.val); v != "" {
			*f.dst = v
		}
	}
	rec = rec.Sanitize()

	node, err := signature.Render(ctx, req.ID, rec)
	if err != nil {
		return m.fail(ctx, err)
	}
	html, err := markup.String(node)
	if err != nil {
		return m.fail(ctx, err)
	}
	return handler.HTML(html)
}

func (m *Module) render(ctx handler.Context, req renderRequest) handler.Response {
	rec := req.Record.Sanitize()
	id := strings.TrimSpace(req.TemplateID)
	if id == "" {
		id = rec.TemplateID
	}
	if id == "" {
		id = signature.DefaultTemplateID
	}
	if _, err := signature.Lookup(id); err != nil {
		return m.fail(ctx, handler.ValidationError{"templateId": {"unknown template"}})
	}

	client, err := signature.ParseClient(req.Client)
	if err != nil {
		return m.fail(ctx, err)
	}
	html, err := signature.Export(ctx, id, rec, client)
	if err != nil {
		return m.fail(ctx, err)
	}

	return handler.JSON(RenderResult{
		TemplateID: id,
		Client:     client,
		HTML:       html,
		PlainText:  signature.PlainText(rec),
		Complete:   rec.IsComplete(),
	})
}

// persona picks the named persona, or the one matching the template.
func persona(id, templateID string) (samples.Persona, error) {
	if id != "" {
		p, err := samples.Get(id)
		if errors.Is(err, samples.ErrPersonaNotFound) {
			return p, handler.ValidationError{"persona": {"unknown persona"}}
		}
		return p, err
	}
	return samples.ForTemplate(templateID)
}
