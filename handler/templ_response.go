package handler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/starfederation/datastar-go/datastar"
)

// TemplOption configures how a component is patched into the page.
type TemplOption = datastar.PatchElementOption

// WithTarget sets the CSS selector the component is patched into.
func WithTarget(selector string) TemplOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets the patch mode.
func WithPatchMode(mode datastar.ElementPatchMode) TemplOption {
	return datastar.WithMode(mode)
}

// TemplPatch is a component with its own patch options, used by TemplMulti.
type TemplPatch struct {
	Component templ.Component
	Options   []TemplOption
}

// Patch creates a TemplPatch.
func Patch(component templ.Component, opts ...TemplOption) TemplPatch {
	return TemplPatch{Component: component, Options: opts}
}

type templResponse struct {
	status  int
	patches []TemplPatch
	full    templ.Component
}

// Render sends one SSE patch per component for datastar requests. Regular
// requests get the full component when set, else the components in order.
func (t templResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := datastar.NewSSE(w, r)
		for _, p := range t.patches {
			if err := sse.PatchElementTempl(p.Component, p.Options...); err != nil {
				return err
			}
		}
		return nil
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if t.status != 0 {
		w.WriteHeader(t.status)
	}
	if t.full != nil {
		return t.full.Render(r.Context(), w)
	}
	for _, p := range t.patches {
		if err := p.Component.Render(r.Context(), w); err != nil {
			return err
		}
	}
	return nil
}

// Templ renders a component.
//
//	return handler.Templ(markup.Component(node), handler.WithTarget("#preview"), handler.WithPatchMode(handler.PatchInner))
func Templ(component templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplWithStatus renders a component with a status code for regular
// requests. SSE responses always use 200.
func TemplWithStatus(status int, component templ.Component, opts ...TemplOption) Response {
	return templResponse{status: status, patches: []TemplPatch{Patch(component, opts...)}}
}

// TemplPartial patches partial for datastar requests and renders full page
// otherwise.
func TemplPartial(partial, full templ.Component, opts ...TemplOption) Response {
	return templResponse{patches: []TemplPatch{Patch(partial, opts...)}, full: full}
}

// TemplMulti patches several page regions at once.
//
//	return handler.TemplMulti(
//		handler.Patch(preview, handler.WithTarget("#preview"), handler.WithPatchMode(handler.PatchInner)),
//		handler.Patch(source, handler.WithTarget("#source"), handler.WithPatchMode(handler.PatchInner)),
//	)
func TemplMulti(patches ...TemplPatch) Response {
	return templResponse{patches: patches}
}
