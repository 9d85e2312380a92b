// Package render draws parameter-definition trees as connected-line
// ASCII text. The compact form gives one line per node; the detailed
// form adds module metadata, inline value annotations, and description
// sub-lines. Both forms are pure functions of the tree.
package render

import (
	"fmt"
	"strings"

	"github.com/guu8hc/ecuckit/internal/arxml"
)

const (
	elbow = "└── "
	tee   = "├── "
	pipe  = "│   "
	blank = "    "
)

// Compact renders the tree with one line per node.
func Compact(m *arxml.Module) string {
	return build(m, false)
}

// Detailed renders the tree with category/version lines, inline default
// and bound annotations, and per-node detail sub-lines.
func Detailed(m *arxml.Module) string {
	return build(m, true)
}

func build(m *arxml.Module, detailed bool) string {
	t := &treeBuilder{detailed: detailed}
	t.addf("%s [MODULE]", m.Name)
	t.addf("└─ %s", m.Description)

	prefix := ""
	if detailed {
		t.addf("   ├─ Category: %s", m.Category)
		t.addf("   ├─ Version: %s", m.Version)
		prefix = blank
	}

	for i, c := range m.Containers {
		t.container(c, prefix, i == len(m.Containers)-1)
	}
	return strings.Join(t.lines, "\n")
}

type treeBuilder struct {
	lines    []string
	detailed bool
}

func (t *treeBuilder) addf(format string, args ...any) {
	t.lines = append(t.lines, fmt.Sprintf(format, args...))
}

// container emits one container node and recurses into its children.
// The terminal glyph of each child is decided by a single running index
// across parameters, references, and sub-containers combined.
func (t *treeBuilder) container(c *arxml.Container, prefix string, last bool) {
	t.addf("%s%s%s [%s] %s", prefix, branch(last), c.Name, c.Kind, c.Multiplicity)
	next := prefix + continuation(last)

	if c.Description != "" {
		t.addf("%s└─ %s", next, c.Description)
	}

	total := len(c.Parameters) + len(c.References) + len(c.SubContainers)
	item := 0
	for _, p := range c.Parameters {
		item++
		t.parameter(p, next, item == total)
	}
	for _, r := range c.References {
		item++
		t.reference(r, next, item == total)
	}
	for _, sub := range c.SubContainers {
		item++
		t.container(sub, next, item == total)
	}
}

func (t *treeBuilder) parameter(p *arxml.Parameter, prefix string, last bool) {
	info := fmt.Sprintf("%s [%s] %s", p.Name, p.Kind, p.Multiplicity)
	if t.detailed {
		if p.Default != "" {
			info += " = " + p.Default
		}
		if p.Min != "" || p.Max != "" {
			info += fmt.Sprintf(" (%s..%s)", p.Min, p.Max)
		}
	}
	t.addf("%s%s📊 %s", prefix, branch(last), info)

	if !t.detailed {
		return
	}
	next := prefix + continuation(last)
	if p.Description != "" {
		t.addf("%s└─ %s", next, p.Description)
	}
	if len(p.Literals) > 0 {
		shown := p.Literals
		ellipsis := ""
		if len(shown) > 5 {
			shown = shown[:5]
			ellipsis = "..."
		}
		t.addf("%s└─ Values: %s%s", next, strings.Join(shown, ", "), ellipsis)
	}
}

func (t *treeBuilder) reference(r *arxml.Reference, prefix string, last bool) {
	t.addf("%s%s🔗 %s [%s] %s", prefix, branch(last), r.Name, r.Kind, r.Multiplicity)

	if !t.detailed {
		return
	}
	next := prefix + continuation(last)
	if r.Description != "" {
		t.addf("%s├─ %s", next, r.Description)
	}
	shown := r.Destinations
	if len(shown) > 3 {
		shown = shown[:3]
	}
	for i, dest := range shown {
		glyph := "├─"
		if i == len(shown)-1 && len(r.Destinations) <= 3 {
			glyph = "└─"
		}
		t.addf("%s%s → %s", next, glyph, lastSegment(dest))
	}
	if n := len(r.Destinations) - 3; n > 0 {
		t.addf("%s└─ ... and %d more", next, n)
	}
}

func branch(last bool) string {
	if last {
		return elbow
	}
	return tee
}

func continuation(last bool) string {
	if last {
		return blank
	}
	return pipe
}

func lastSegment(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
