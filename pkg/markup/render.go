package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Render serializes n into w.
func Render(w io.Writer, n Node) error {
	s, err := String(n)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// String serializes n into an HTML string.
func String(n Node) (string, error) {
	if isNil(n) {
		return "", ErrNilNode
	}
	var b strings.Builder
	if err := n.writeTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// MustString is like String but panics on error.
// Intended for trees built from constant tag names.
func MustString(n Node) string {
	s, err := String(n)
	if err != nil {
		panic(err)
	}
	return s
}

// Component adapts n to a templ.Component so it can be embedded in templ pages
// and datastar element patches.
func Component(n Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Render(w, n)
	})
}

// Document wraps body in a minimal standalone HTML document.
func Document(title string, body Node) Node {
	return Fragment(
		Raw("<!DOCTYPE html>"),
		El("html",
			El("head",
				El("meta").Attr("charset", "utf-8"),
				El("meta").Attr("name", "viewport").Attr("content", "width=device-width, initial-scale=1"),
				El("title", Text(title)),
			),
			El("body", body).Css("margin", "0").Css("padding", "16px"),
		),
	)
}
