// Package signature renders contact records into email-client-safe HTML signatures.
//
// A ContactRecord is mapped to one of a fixed set of visual templates (classic,
// modern, minimal, corporate) through a static registry. Each template renderer
// is a total, deterministic function that builds a markup.Node tree using only
// table layout and inline styles. The same tree is used for the on-screen
// preview and for clipboard export:
//
//	node, err := signature.Render(ctx, "modern", rec)
//	if errors.Is(err, signature.ErrTemplateNotFound) {
//		// node still holds a renderable "Template not found" message
//	}
//
//	html, err := signature.Export(ctx, "modern", rec, signature.ClientGmail)
//
// Missing name or email never fails a render. Placeholder copy is used instead
// and a warning is written to the logger found in ctx (see logger.WithContext).
package signature
