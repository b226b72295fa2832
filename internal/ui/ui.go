// Package ui holds the page chrome and form widgets shared by the HTML modules.
// Everything is built from pkg/markup trees and handed to handlers as
// templ.Component.
package ui

import (
	"github.com/a-h/templ"

	"github.com/dmitrymomot/signaturecraft/handler"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// DatastarScript is the datastar client bundle loaded by every page.
const DatastarScript = "https://cdn.jsdelivr.net/gh/starfederation/datastar@v1.0.0/bundles/datastar.js"

const fontFamily = "Arial, Helvetica, sans-serif"

// Page wraps body into a full HTML document with the toast container the
// error handler patches into.
func Page(title string, body ...markup.Node) templ.Component {
	doc := markup.Fragment(
		markup.Raw("<!DOCTYPE html>"),
		markup.El("html",
			markup.El("head",
				markup.El("meta").Attr("charset", "utf-8"),
				markup.El("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1"),
				markup.El("title", markup.Text(title+" - SignatureCraft")),
				markup.El("script").Attr("type", "module").Attr("src", DatastarScript),
			),
			markup.El("body",
				markup.El("div").Attr("id", "toasts"),
				markup.El("main", body...).
					Css("max-width", "960px").
					Css("margin", "0 auto").
					Css("padding", "24px"),
			).Css("font-family", fontFamily).Css("color", "#0f172a"),
		).Attr("lang", "en"),
	)
	return markup.Component(doc)
}

// Heading is a page title.
func Heading(text string) *markup.Element {
	return markup.El("h1", markup.Text(text)).Css("font-size", "24px")
}

// Input renders a labelled input with its validation messages.
func Input(label, name, inputType, value string, errs handler.ValidationError) *markup.Element {
	input := markup.El("input").
		Attr("id", name).
		Attr("name", name).
		Attr("type", inputType).
		Css("display", "block").
		Css("width", "100%").
		Css("padding", "8px")
	if value != "" && inputType != "password" {
		input.Attr("value", value)
	}

	field := markup.El("div",
		markup.El("label", markup.Text(label)).Attr("for", name),
		input,
	).Css("margin-bottom", "12px")
	for _, msg := range errs[name] {
		field.Append(FieldError(msg))
	}
	return field
}

// FieldError is an inline validation message.
func FieldError(msg string) *markup.Element {
	return markup.El("p", markup.Text(msg)).
		Attr("class", "field-error").
		Css("color", "#b91c1c").
		Css("font-size", "12px").
		Css("margin", "4px 0 0")
}

// Alert is a form-level error banner; empty messages render nothing.
func Alert(msg string) markup.Node {
	return markup.If(msg != "", markup.El("div", markup.Text(msg)).
		Attr("role", "alert").
		Css("background", "#fef2f2").
		Css("color", "#b91c1c").
		Css("padding", "8px 12px").
		Css("margin-bottom", "12px"))
}

// Button is a submit button.
func Button(label string) *markup.Element {
	return markup.El("button", markup.Text(label)).
		Attr("type", "submit").
		Css("background", "#1e3a8a").
		Css("color", "#ffffff").
		Css("border", "0").
		Css("padding", "10px 16px").
		Css("cursor", "pointer")
}

// Link is an anchor.
func Link(text, href string) *markup.Element {
	return markup.El("a", markup.Text(text)).Attr("href", href).Css("color", "#1e3a8a")
}
