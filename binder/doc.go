// Package binder decodes HTTP requests into typed request structs.
//
// Each binder handles one source and only touches struct fields carrying its
// tag:
//
//	type updateRequest struct {
//		ID     string                  `path:"id" json:"-"`
//		Client string                  `query:"client" json:"-"`
//		Record signature.ContactRecord `json:"record"`
//	}
//
//	handler.Wrap(h, handler.WithBinders[handler.Context, updateRequest](
//		binder.Path(chi.URLParam),
//		binder.Query(),
//		binder.JSON(),
//	))
//
// JSON and Signals decode the whole body into the struct using its json tags.
// Binders return ErrBinderNotApplicable when the request does not carry their
// source, which lets a single handler accept several encodings.
package binder
