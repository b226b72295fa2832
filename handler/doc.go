// Package handler wraps typed request handlers into http.HandlerFunc.
//
// A handler receives a Context and a request struct filled by binders, and
// returns a Response:
//
//	type previewRequest struct {
//		TemplateID string                  `query:"template" json:"-"`
//		Record     signature.ContactRecord `json:"record"`
//	}
//
//	func (h *Handler) preview(ctx handler.Context, req previewRequest) handler.Response {
//		node, err := signature.Render(ctx, req.TemplateID, req.Record)
//		if err != nil {
//			return handler.JSONError(handler.ErrNotFound)
//		}
//		return handler.Templ(markup.Component(node))
//	}
//
//	r.Post("/api/preview", handler.Wrap(h.preview,
//		handler.WithBinders[handler.Context, previewRequest](binder.Query(), binder.JSON()),
//		handler.WithErrorHandler[handler.Context, previewRequest](errHandler),
//	))
//
// Responses: JSON and JSONError write the {data, meta, error} envelope. Templ,
// TemplPartial and TemplMulti render components, as SSE element patches for
// datastar requests and as HTML otherwise. Redirect and RedirectBack issue a
// redirect or a datastar location change. HTML, Text and Download write raw
// content. Empty writes a bare status.
//
// NewErrorHandler returns an ErrorHandler that answers with the JSON envelope
// for API requests, a toast for datastar requests and an error page otherwise.
package handler
