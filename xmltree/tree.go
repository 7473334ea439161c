// Package xmltree builds a navigable element tree from an XML document.
//
// Names are kept exactly as written in the document: an element written as
// <rdf:RDF> has the name "rdf:RDF" and a namespace declaration is the
// attribute "xmlns:rdf". No prefix is translated into its namespace URI, so
// callers that resolve qualified names do it themselves from the xmlns
// attributes they find on the tree.
//
// Text that consists only of whitespace is dropped, which means an element
// that holds nothing but indentation reports no text content at all.
package xmltree

import (
	"strings"
)

// Attr is an attribute with its qualified name as written in the document.
type Attr struct {
	Name  string
	Value string
}

// Element is a node of the tree.
//
// All accessors accept a nil receiver and behave as if the element had no
// attributes, children or text, which lets lookups be chained without
// intermediate nil checks.
type Element struct {
	// Name is the qualified element name, e.g. "sparql" or "rdf:Description".
	Name     string
	Attrs    []Attr
	Children []*Element

	text    string
	hasText bool
}

// Attr returns the value of the attribute with the given qualified name.
func (e *Element) Attr(name string) (string, bool) {
	if e == nil {
		return "", false
	}
	for _, attr := range e.Attrs {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Child returns the first direct child with the given name, or nil.
func (e *Element) Child(name string) *Element {
	if e == nil {
		return nil
	}
	for _, child := range e.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// ChildAt returns the i-th direct child, or nil when i is out of range.
func (e *Element) ChildAt(i int) *Element {
	if e == nil || i < 0 || i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

// Len returns the number of direct children.
func (e *Element) Len() int {
	if e == nil {
		return 0
	}
	return len(e.Children)
}

// Text returns the character data directly inside the element. The second
// result is false when the element has no content other than whitespace.
func (e *Element) Text() (string, bool) {
	if e == nil {
		return "", false
	}
	return e.text, e.hasText
}

// Prefix returns the part of the name before the first colon, or "".
func (e *Element) Prefix() string {
	if e == nil {
		return ""
	}
	prefix, _, ok := strings.Cut(e.Name, ":")
	if !ok {
		return ""
	}
	return prefix
}

// Local returns the part of the name after the first colon, or the whole
// name when it has no prefix.
func (e *Element) Local() string {
	if e == nil {
		return ""
	}
	_, local, ok := strings.Cut(e.Name, ":")
	if !ok {
		return e.Name
	}
	return local
}

// setText stores s with surrounding whitespace removed. Whitespace-only
// text is dropped.
func (e *Element) setText(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	e.text = s
	e.hasText = true
}
