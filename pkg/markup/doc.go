// Package markup builds email-safe HTML as an in-memory node tree.
//
// A tree is created once and then either serialized to a string with String
// (clipboard export, email bodies) or rendered through templ with Component
// (live preview pages). Both paths use the same serializer, so the preview and
// the exported HTML cannot drift apart.
//
// Styling is expressed only as inline declarations on elements:
//
//	cell := markup.El("td").
//		Css("padding", "0 12px").
//		Css("color", "#000000").
//		Append(markup.Text("John Doe"))
//
//	html := markup.String(markup.El("table").Append(markup.El("tr").Append(cell)))
//
// Text and attribute values are escaped. Raw inserts pre-built HTML verbatim and
// must only be used with trusted input.
package markup
