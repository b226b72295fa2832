package markup

import (
	"strings"

	"github.com/a-h/templ"
)

// Node is a piece of markup that can serialize itself.
type Node interface {
	writeTo(b *strings.Builder) error
}

// voidElements never carry children and are written as <tag ... />.
var voidElements = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
	"link":  true,
	"meta":  true,
}

// Attr is a single element attribute.
type Attr struct {
	Key   string
	Value string
}

// Decl is a single inline CSS declaration.
type Decl struct {
	Property string
	Value    string
}

// Style is an ordered list of inline CSS declarations.
type Style []Decl

// String returns the declarations in insertion order, separated by semicolons.
func (s Style) String() string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(d.Property)
		b.WriteByte(':')
		b.WriteString(d.Value)
	}
	return b.String()
}

// Element is an HTML element with attributes, inline style and children.
type Element struct {
	Tag      string
	Attrs    []Attr
	Style    Style
	Children []Node
}

// El creates a new element with the given children. Nil children are skipped.
func El(tag string, children ...Node) *Element {
	e := &Element{Tag: tag}
	return e.Append(children...)
}

// Attr sets an attribute, replacing an existing one with the same key.
func (e *Element) Attr(key, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Key == key {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Key: key, Value: value})
	return e
}

// Css adds an inline style declaration. Empty values are ignored.
func (e *Element) Css(property, value string) *Element {
	if value == "" {
		return e
	}
	for i := range e.Style {
		if e.Style[i].Property == property {
			e.Style[i].Value = value
			return e
		}
	}
	e.Style = append(e.Style, Decl{Property: property, Value: value})
	return e
}

// Append adds children to the element. Nil children are skipped.
func (e *Element) Append(children ...Node) *Element {
	for _, c := range children {
		if isNil(c) {
			continue
		}
		e.Children = append(e.Children, c)
	}
	return e
}

// AttrValue returns the value of the attribute with the given key.
func (e *Element) AttrValue(key string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Key == key {
			return a.Value, true
		}
	}
	return "", false
}

func (e *Element) writeTo(b *strings.Builder) error {
	if !validTag(e.Tag) {
		return ErrInvalidTag
	}

	b.WriteByte('<')
	b.WriteString(e.Tag)
	for _, a := range e.Attrs {
		writeAttr(b, a.Key, a.Value)
	}
	if len(e.Style) > 0 {
		writeAttr(b, "style", e.Style.String())
	}

	if voidElements[e.Tag] {
		b.WriteString(" />")
		return nil
	}
	b.WriteByte('>')

	for _, c := range e.Children {
		if err := c.writeTo(b); err != nil {
			return err
		}
	}

	b.WriteString("</")
	b.WriteString(e.Tag)
	b.WriteByte('>')
	return nil
}

type text string

// Text creates an escaped text node.
func Text(s string) Node {
	return text(s)
}

func (t text) writeTo(b *strings.Builder) error {
	b.WriteString(templ.EscapeString(string(t)))
	return nil
}

type raw string

// Raw creates a node written verbatim.
func Raw(s string) Node {
	return raw(s)
}

func (r raw) writeTo(b *strings.Builder) error {
	b.WriteString(string(r))
	return nil
}

// Group is a list of sibling nodes without a wrapping element.
type Group []Node

// Fragment groups nodes without adding a wrapper element. Nil nodes are skipped.
func Fragment(nodes ...Node) Group {
	g := make(Group, 0, len(nodes))
	for _, n := range nodes {
		if !isNil(n) {
			g = append(g, n)
		}
	}
	return g
}

func (g Group) writeTo(b *strings.Builder) error {
	for _, n := range g {
		if err := n.writeTo(b); err != nil {
			return err
		}
	}
	return nil
}

// If returns n when cond is true and nil otherwise.
// Nil nodes are dropped by El, Append and Fragment.
func If(cond bool, n Node) Node {
	if cond {
		return n
	}
	return nil
}

func writeAttr(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(value))
	b.WriteByte('"')
}

func validTag(tag string) bool {
	if tag == "" {
		return false
	}
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

func isNil(n Node) bool {
	if n == nil {
		return true
	}
	if e, ok := n.(*Element); ok && e == nil {
		return true
	}
	return false
}
