package arxml

import (
	"encoding/xml"
	"strings"
)

// Namespace is the AUTOSAR r4.0 instance document namespace. Element
// lookups match qualified names only; documents in other namespace
// versions are not walked.
const Namespace = "http://autosar.org/schema/r4.0"

// element is a generic view of one XML element: qualified name,
// attributes, character data, and child elements in document order.
// The whole document decodes into a single recursive value so the walk
// can run without re-entering the decoder.
type element struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Text     string     `xml:",chardata"`
	Children []element  `xml:",any"`
}

// is reports whether e carries the given AUTOSAR-qualified local name.
func (e *element) is(local string) bool {
	return e.XMLName.Space == Namespace && e.XMLName.Local == local
}

// child returns the first direct child with the given name, or nil.
func (e *element) child(local string) *element {
	for i := range e.Children {
		if e.Children[i].is(local) {
			return &e.Children[i]
		}
	}
	return nil
}

// children returns all direct children with the given name, in document order.
func (e *element) children(local string) []*element {
	var out []*element
	for i := range e.Children {
		if e.Children[i].is(local) {
			out = append(out, &e.Children[i])
		}
	}
	return out
}

// descendant returns the first descendant with the given name in
// document order (depth-first), or nil.
func (e *element) descendant(local string) *element {
	for i := range e.Children {
		c := &e.Children[i]
		if c.is(local) {
			return c
		}
		if d := c.descendant(local); d != nil {
			return d
		}
	}
	return nil
}

// attr returns the value of the named attribute, or "".
func (e *element) attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value
		}
	}
	return ""
}

// text returns the element's trimmed character data.
func (e *element) text() string {
	return strings.TrimSpace(e.Text)
}

// childText returns the trimmed text of the first direct child with the
// given name, or "" when the child is missing or empty.
func (e *element) childText(local string) string {
	if c := e.child(local); c != nil {
		return c.text()
	}
	return ""
}

// findElement returns e itself when it carries the given name, otherwise
// its first matching descendant in document order, or nil.
func findElement(e *element, local string) *element {
	if e.is(local) {
		return e
	}
	return e.descendant(local)
}
