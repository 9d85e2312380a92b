package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guu8hc/ecuckit/internal/arxml"
)

func testModule() *arxml.Module {
	one := arxml.EncodeMultiplicity("", "")
	return &arxml.Module{
		Name:        "Nm",
		Description: "Network management.",
		Category:    "STANDARDIZED",
		Version:     "4.4.0",
		Containers: []*arxml.Container{
			{
				Name:         "NmGlobalConfig",
				Kind:         arxml.ContainerTopLevel,
				Multiplicity: one,
				Description:  "Global configuration.",
				Parameters: []*arxml.Parameter{
					{
						Name:         "NmPassiveModeEnabled",
						Kind:         arxml.ParamBoolean,
						Multiplicity: one,
						Description:  "Enables passive mode.",
						Default:      "false",
					},
					{
						Name:         "NmPduRxIndication",
						Kind:         arxml.ParamEnumeration,
						Multiplicity: one,
						Literals:     []string{"A", "B", "C", "D", "E", "F"},
					},
				},
				References: []*arxml.Reference{
					{
						Name:         "NmComMChannelRef",
						Kind:         arxml.RefPlain,
						Multiplicity: one,
						Description:  "Reference to the ComM channel.",
						Destinations: []string{"/AUTOSAR/EcucDefs/ComM/ComMChannel"},
					},
				},
				SubContainers: []*arxml.Container{
					{
						Name:         "NmChannelConfig",
						Kind:         arxml.ContainerSub,
						Multiplicity: arxml.EncodeMultiplicity("1", "*"),
						Parameters: []*arxml.Parameter{
							{
								Name:         "NmNodeId",
								Kind:         arxml.ParamInteger,
								Multiplicity: one,
								Min:          "0",
								Max:          "255",
							},
						},
					},
				},
			},
			{
				Name:         "NmDemEventParameterRefs",
				Kind:         arxml.ContainerTopLevel,
				Multiplicity: arxml.EncodeMultiplicity("0", "1"),
				References: []*arxml.Reference{
					{
						Name:         "NmDemRef",
						Kind:         arxml.RefPlain,
						Multiplicity: one,
						Destinations: []string{"/D/Dest1", "/D/Dest2", "/D/Dest3", "/D/Dest4"},
					},
				},
			},
		},
	}
}

func TestCompactTree(t *testing.T) {
	expected := strings.Join([]string{
		"Nm [MODULE]",
		"└─ Network management.",
		"├── NmGlobalConfig [CONTAINER] 1",
		"│   └─ Global configuration.",
		"│   ├── 📊 NmPassiveModeEnabled [BOOLEAN] 1",
		"│   ├── 📊 NmPduRxIndication [ENUMERATION] 1",
		"│   ├── 🔗 NmComMChannelRef [REFERENCE] 1",
		"│   └── NmChannelConfig [SUB_CONTAINER] 1..*",
		"│       └── 📊 NmNodeId [INTEGER] 1",
		"└── NmDemEventParameterRefs [CONTAINER] 0..1",
		"    └── 🔗 NmDemRef [REFERENCE] 1",
	}, "\n")

	assert.Equal(t, expected, Compact(testModule()))
}

func TestDetailedTree(t *testing.T) {
	expected := strings.Join([]string{
		"Nm [MODULE]",
		"└─ Network management.",
		"   ├─ Category: STANDARDIZED",
		"   ├─ Version: 4.4.0",
		"    ├── NmGlobalConfig [CONTAINER] 1",
		"    │   └─ Global configuration.",
		"    │   ├── 📊 NmPassiveModeEnabled [BOOLEAN] 1 = false",
		"    │   │   └─ Enables passive mode.",
		"    │   ├── 📊 NmPduRxIndication [ENUMERATION] 1",
		"    │   │   └─ Values: A, B, C, D, E...",
		"    │   ├── 🔗 NmComMChannelRef [REFERENCE] 1",
		"    │   │   ├─ Reference to the ComM channel.",
		"    │   │   └─ → ComMChannel",
		"    │   └── NmChannelConfig [SUB_CONTAINER] 1..*",
		"    │       └── 📊 NmNodeId [INTEGER] 1 (0..255)",
		"    └── NmDemEventParameterRefs [CONTAINER] 0..1",
		"        └── 🔗 NmDemRef [REFERENCE] 1",
		"            ├─ → Dest1",
		"            ├─ → Dest2",
		"            ├─ → Dest3",
		"            └─ ... and 1 more",
	}, "\n")

	assert.Equal(t, expected, Detailed(testModule()))
}

func TestCompactTreeEmptyDescription(t *testing.T) {
	mod := &arxml.Module{Name: "Fee"}
	out := Compact(mod)

	lines := strings.Split(out, "\n")
	assert.Equal(t, "Fee [MODULE]", lines[0])
	// The description line is kept even when empty.
	assert.Equal(t, "└─ ", lines[1])
	assert.Len(t, lines, 2)
}

func TestDetailedTreePartialBounds(t *testing.T) {
	mod := &arxml.Module{
		Name: "Can",
		Containers: []*arxml.Container{
			{
				Name:         "CanGeneral",
				Kind:         arxml.ContainerTopLevel,
				Multiplicity: arxml.EncodeMultiplicity("", ""),
				Parameters: []*arxml.Parameter{
					{
						Name:         "CanMainFunctionPeriod",
						Kind:         arxml.ParamFloat,
						Multiplicity: arxml.EncodeMultiplicity("", ""),
						Min:          "0.001",
					},
				},
			},
		},
	}

	out := Detailed(mod)
	// A single present bound still renders the range annotation.
	assert.Contains(t, out, "📊 CanMainFunctionPeriod [FLOAT] 1 (0.001..)")
}

func TestRenderIsDeterministic(t *testing.T) {
	mod := testModule()
	assert.Equal(t, Detailed(mod), Detailed(mod))
	assert.Equal(t, Compact(mod), Compact(mod))
}
