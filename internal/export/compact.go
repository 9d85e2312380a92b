package export

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/guu8hc/ecuckit/internal/arxml"
)

// compactAttrs is the attribute object of one parameter in the compact
// form. Empty fields are dropped, so a parameter with nothing to say
// encodes as {}.
type compactAttrs struct {
	Type         string   `json:"type,omitempty"`
	Multiplicity string   `json:"multiplicity,omitempty"`
	Options      []string `json:"options,omitempty"`
	MinValue     string   `json:"minValue,omitempty"`
	MaxValue     string   `json:"maxValue,omitempty"`
	Default      string   `json:"default,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// Compact projects a module into the compact form: an object keyed by
// the module name whose value maps container names to their merged
// children. Key order is first-seen document order, parameters before
// sub-containers; references do not appear in this form. When a
// parameter and a sub-container share a name, the later entry wins.
func Compact(m *arxml.Module) *orderedmap.OrderedMap[string, any] {
	containers := orderedmap.New[string, any]()
	for _, c := range m.Containers {
		containers.Set(c.Name, compactContainer(c))
	}
	root := orderedmap.New[string, any]()
	root.Set(m.Name, containers)
	return root
}

func compactContainer(c *arxml.Container) *orderedmap.OrderedMap[string, any] {
	entries := orderedmap.New[string, any]()
	for _, p := range c.Parameters {
		entries.Set(p.Name, compactParameter(p))
	}
	for _, sub := range c.SubContainers {
		entries.Set(sub.Name, compactContainer(sub))
	}
	return entries
}

func compactParameter(p *arxml.Parameter) compactAttrs {
	attrs := compactAttrs{
		Type:        string(p.Kind),
		Options:     p.Literals,
		MinValue:    p.Min,
		MaxValue:    p.Max,
		Default:     p.Default,
		Description: p.Description,
	}
	// The implicit "1" is the default and carries no information.
	if d := p.Multiplicity.Display; d != "1" {
		attrs.Multiplicity = d
	}
	return attrs
}
