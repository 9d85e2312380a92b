package arxml

import (
	"encoding/xml"
	"fmt"
	"os"
)

// Parse reads and parses an ARXML parameter-definition file.
func Parse(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ARXML file: %w", err)
	}
	return parse(data, path)
}

// ParseBytes parses an ARXML parameter definition from memory.
func ParseBytes(data []byte) (*Module, error) {
	return parse(data, "")
}

func parse(data []byte, path string) (*Module, error) {
	var doc element
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Path: path, Err: err}
	}

	root := locateRoot(&doc)
	if root == nil {
		return nil, &SchemaRootNotFoundError{Path: path}
	}

	return buildModule(root), nil
}

// locateRoot finds the module-definition root. The primary shape is an
// ECUC-MODULE-DEF anywhere in the document. Destination-URI documents
// instead wrap the module configuration in an
// ECUC-PARAM-CONF-CONTAINER-DEF somewhere below ECUC-DESTINATION-URI-DEF;
// that container becomes the effective root.
func locateRoot(doc *element) *element {
	if m := findElement(doc, "ECUC-MODULE-DEF"); m != nil {
		return m
	}
	if dest := findElement(doc, "ECUC-DESTINATION-URI-DEF"); dest != nil {
		return dest.descendant("ECUC-PARAM-CONF-CONTAINER-DEF")
	}
	return nil
}

// buildModule extracts module metadata and top-level containers from the
// effective root. Every scalar is optional: a missing field yields the
// empty string, never a failure.
func buildModule(root *element) *Module {
	m := &Module{
		Name:        root.childText("SHORT-NAME"),
		Description: description(root),
		Category:    root.childText("CATEGORY"),
		Version:     root.childText("VERSION"),
	}

	// The defining document may group its top-level containers under
	// SUB-CONTAINERS, CONTAINERS, or both; children found under either
	// are appended in document order.
	for _, group := range []string{"SUB-CONTAINERS", "CONTAINERS"} {
		g := root.child(group)
		if g == nil {
			continue
		}
		for _, el := range g.children("ECUC-PARAM-CONF-CONTAINER-DEF") {
			m.Containers = append(m.Containers, buildContainer(el, ContainerTopLevel))
		}
	}
	return m
}

// buildContainer walks one container element recursively. The kind is
// supplied by the caller: top-level, sub-container, or choice branch.
func buildContainer(el *element, kind ContainerKind) *Container {
	c := &Container{
		Name:         el.childText("SHORT-NAME"),
		Kind:         kind,
		Multiplicity: multiplicityOf(el),
		Description:  description(el),
	}

	if params := el.child("PARAMETERS"); params != nil {
		for i := range params.Children {
			c.Parameters = append(c.Parameters, buildParameter(&params.Children[i]))
		}
	}

	if refs := el.child("REFERENCES"); refs != nil {
		for i := range refs.Children {
			c.References = append(c.References, buildReference(&refs.Children[i]))
		}
	}

	if subs := el.child("SUB-CONTAINERS"); subs != nil {
		for i := range subs.Children {
			c.SubContainers = append(c.SubContainers, buildContainer(&subs.Children[i], ContainerSub))
		}
	}

	// Choice branches land in the same child sequence, after the
	// sub-containers, so document order within each group is preserved.
	if choices := el.child("CHOICES"); choices != nil {
		for i := range choices.Children {
			c.SubContainers = append(c.SubContainers, buildContainer(&choices.Children[i], ContainerChoice))
		}
	}

	return c
}

// buildParameter classifies a parameter element by tag and reads its
// value constraints. Unrecognized tags map to ParamUnknown rather than
// being dropped, so the output accounts for every schema child.
func buildParameter(el *element) *Parameter {
	kind, ok := parameterKinds[el.XMLName.Local]
	if !ok {
		kind = ParamUnknown
	}

	p := &Parameter{
		Name:         el.childText("SHORT-NAME"),
		Kind:         kind,
		Multiplicity: multiplicityOf(el),
		Description:  description(el),
		Default:      el.childText("DEFAULT-VALUE"),
		Min:          el.childText("MIN"),
		Max:          el.childText("MAX"),
	}

	if literals := el.child("LITERALS"); literals != nil {
		for _, lit := range literals.children("ECUC-ENUMERATION-LITERAL-DEF") {
			if name := lit.childText("SHORT-NAME"); name != "" {
				p.Literals = append(p.Literals, name)
			}
		}
	}

	return p
}

// buildReference classifies a reference element by tag. Unrecognized
// tags fall back to the plain REFERENCE kind. At most one destination
// path is captured.
func buildReference(el *element) *Reference {
	kind, ok := referenceKinds[el.XMLName.Local]
	if !ok {
		kind = RefPlain
	}

	r := &Reference{
		Name:         el.childText("SHORT-NAME"),
		Kind:         kind,
		Multiplicity: multiplicityOf(el),
		Description:  description(el),
	}

	if dest := el.childText("DESTINATION-REF"); dest != "" {
		r.Destinations = append(r.Destinations, dest)
	}

	return r
}

// multiplicityOf encodes the element's multiplicity children. Missing
// bounds default to "1" inside EncodeMultiplicity.
func multiplicityOf(el *element) Multiplicity {
	return EncodeMultiplicity(el.childText("LOWER-MULTIPLICITY"), el.childText("UPPER-MULTIPLICITY"))
}

// description returns the English entry of the element's DESC block, or
// "" when no English localization exists.
func description(el *element) string {
	for _, desc := range el.children("DESC") {
		for _, l2 := range desc.children("L-2") {
			if l2.attr("L") == "EN" {
				return l2.text()
			}
		}
	}
	return ""
}
