package export

import "github.com/guu8hc/ecuckit/internal/arxml"

// ModuleDoc is the descriptive projection of a module. Every field is
// always present in the encoded JSON; absent scalars appear as empty
// strings and absent sequences as empty arrays, never null.
type ModuleDoc struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Version     string          `json:"version"`
	Containers  []*ContainerDoc `json:"containers"`
}

// ContainerDoc is the descriptive projection of one container.
type ContainerDoc struct {
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Multiplicity      string          `json:"multiplicity"`
	LowerMultiplicity int             `json:"lowerMultiplicity"`
	UpperMultiplicity int             `json:"upperMultiplicity"`
	Description       string          `json:"description"`
	Parameters        []*ParameterDoc `json:"parameters"`
	References        []*ReferenceDoc `json:"references"`
	SubContainers     []*ContainerDoc `json:"sub_containers"`
}

// ParameterDoc is the descriptive projection of one parameter.
type ParameterDoc struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Multiplicity string   `json:"multiplicity"`
	Description  string   `json:"description"`
	Default      string   `json:"default"`
	Min          string   `json:"min"`
	Max          string   `json:"max"`
	Literals     []string `json:"literals"`
}

// ReferenceDoc is the descriptive projection of one reference.
type ReferenceDoc struct {
	Name         string   `json:"name"`
	Type         string   `json:"type"`
	Multiplicity string   `json:"multiplicity"`
	Description  string   `json:"description"`
	Destinations []string `json:"destinations"`
}

// Descriptive projects a module into its descriptive document form.
// Containers appear in document order.
func Descriptive(m *arxml.Module) *ModuleDoc {
	doc := &ModuleDoc{
		Name:        m.Name,
		Type:        "MODULE",
		Description: m.Description,
		Category:    m.Category,
		Version:     m.Version,
		Containers:  make([]*ContainerDoc, 0, len(m.Containers)),
	}
	for _, c := range m.Containers {
		doc.Containers = append(doc.Containers, descriptiveContainer(c))
	}
	return doc
}

func descriptiveContainer(c *arxml.Container) *ContainerDoc {
	doc := &ContainerDoc{
		Name:              c.Name,
		Type:              string(c.Kind),
		Multiplicity:      c.Multiplicity.Display,
		LowerMultiplicity: c.Multiplicity.Lower,
		UpperMultiplicity: c.Multiplicity.Upper,
		Description:       c.Description,
		Parameters:        make([]*ParameterDoc, 0, len(c.Parameters)),
		References:        make([]*ReferenceDoc, 0, len(c.References)),
		SubContainers:     make([]*ContainerDoc, 0, len(c.SubContainers)),
	}
	for _, p := range c.Parameters {
		doc.Parameters = append(doc.Parameters, &ParameterDoc{
			Name:         p.Name,
			Type:         string(p.Kind),
			Multiplicity: p.Multiplicity.Display,
			Description:  p.Description,
			Default:      p.Default,
			Min:          p.Min,
			Max:          p.Max,
			Literals:     append([]string{}, p.Literals...),
		})
	}
	for _, r := range c.References {
		doc.References = append(doc.References, &ReferenceDoc{
			Name:         r.Name,
			Type:         string(r.Kind),
			Multiplicity: r.Multiplicity.Display,
			Description:  r.Description,
			Destinations: append([]string{}, r.Destinations...),
		})
	}
	for _, sub := range c.SubContainers {
		doc.SubContainers = append(doc.SubContainers, descriptiveContainer(sub))
	}
	return doc
}
