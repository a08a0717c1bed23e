// Package xmltree builds XML element trees and serializes them to compact,
// deterministic strings. Element names, attribute names and values, and text
// content are escaped once, at insertion time; rendering never touches the
// stored strings again.
package xmltree

import "strings"

// escaper replaces the five reserved XML characters with their named
// entities. strings.Replacer builds its lookup table lazily on first use and
// is safe for concurrent readers.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"'", "&apos;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape returns s with &, ", ', < and > replaced by their named entities.
// Strings without reserved characters are returned unchanged.
func Escape(s string) string {
	return escaper.Replace(s)
}

type node interface {
	writeTo(sb *strings.Builder)
}

// text is an escaped text fragment.
type text struct {
	escaped string
}

func (t text) writeTo(sb *strings.Builder) {
	sb.WriteString(t.escaped)
}

// fragment is pre-rendered XML spliced into the body untouched.
type fragment struct {
	xml string
}

func (f fragment) writeTo(sb *strings.Builder) {
	sb.WriteString(f.xml)
}

type attr struct {
	name  string
	value string
}

// Element is a single XML element with ordered attributes and an ordered
// body of text fragments and child elements. Build it with the With* chain
// and serialize it with String. An Element must not be modified once it has
// been attached to a parent or rendered.
type Element struct {
	name  string
	attrs []attr
	body  []node
}

// New creates an element with the given name.
func New(name string) *Element {
	return &Element{name: Escape(name)}
}

// WithAttr appends an attribute. Attributes render in insertion order.
func (e *Element) WithAttr(name, value string) *Element {
	e.attrs = append(e.attrs, attr{name: Escape(name), value: Escape(value)})
	return e
}

// WithText appends an escaped text fragment to the body.
func (e *Element) WithText(t string) *Element {
	e.body = append(e.body, text{escaped: Escape(t)})
	return e
}

// WithElement appends a child element. The child is owned by e afterwards.
func (e *Element) WithElement(child *Element) *Element {
	e.body = append(e.body, child)
	return e
}

// WithTextElement appends a child element whose sole body is one text
// fragment.
func (e *Element) WithTextElement(name, t string) *Element {
	return e.WithElement(New(name).WithText(t))
}

// WithFragment splices pre-rendered, pre-escaped XML into the body without
// re-escaping it. Callers are responsible for the fragment being well formed.
func (e *Element) WithFragment(xml string) *Element {
	e.body = append(e.body, fragment{xml: xml})
	return e
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.name)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.name)
		sb.WriteString(`="`)
		sb.WriteString(a.value)
		sb.WriteByte('"')
	}
	sb.WriteByte('>')
	for _, n := range e.body {
		n.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.name)
	sb.WriteByte('>')
}

// String serializes the element depth first with no inserted whitespace.
// Empty elements render as <name></name>; the target schema does not accept
// the self-closing shorthand. Rendering does not mutate the tree and returns
// identical output on every call.
func (e *Element) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}
