package arxml

// ParameterKind is the semantic category of a parameter definition,
// derived from its XML element tag.
type ParameterKind string

const (
	ParamBoolean      ParameterKind = "BOOLEAN"
	ParamInteger      ParameterKind = "INTEGER"
	ParamFloat        ParameterKind = "FLOAT"
	ParamString       ParameterKind = "STRING"
	ParamEnumeration  ParameterKind = "ENUMERATION"
	ParamFunctionName ParameterKind = "FUNCTION_NAME"
	ParamUnknown      ParameterKind = "UNKNOWN"
)

// ReferenceKind is the semantic category of a reference definition.
type ReferenceKind string

const (
	RefPlain   ReferenceKind = "REFERENCE"
	RefChoice  ReferenceKind = "CHOICE_REFERENCE"
	RefForeign ReferenceKind = "FOREIGN_REFERENCE"
)

// ContainerKind records how a container was reached during the walk
// (top-level, nested, or choice branch). It is assigned by the caller's
// context, not encoded in the XML element itself.
type ContainerKind string

const (
	ContainerTopLevel ContainerKind = "CONTAINER"
	ContainerSub      ContainerKind = "SUB_CONTAINER"
	ContainerChoice   ContainerKind = "CHOICE_CONTAINER"
)

// parameterKinds maps parameter definition tags to their kind. Tags
// absent from the table classify as ParamUnknown.
var parameterKinds = map[string]ParameterKind{
	"ECUC-BOOLEAN-PARAM-DEF":     ParamBoolean,
	"ECUC-INTEGER-PARAM-DEF":     ParamInteger,
	"ECUC-FLOAT-PARAM-DEF":       ParamFloat,
	"ECUC-STRING-PARAM-DEF":      ParamString,
	"ECUC-ENUMERATION-PARAM-DEF": ParamEnumeration,
	"ECUC-FUNCTION-NAME-DEF":     ParamFunctionName,
}

// referenceKinds maps reference definition tags to their kind. Tags
// absent from the table classify as RefPlain.
var referenceKinds = map[string]ReferenceKind{
	"ECUC-REFERENCE-DEF":         RefPlain,
	"ECUC-CHOICE-REFERENCE-DEF":  RefChoice,
	"ECUC-FOREIGN-REFERENCE-DEF": RefForeign,
}

// Module is the root of a parsed parameter-definition tree. It is built
// once per document and never mutated afterwards, so it is safe to share
// across goroutines.
type Module struct {
	Name        string
	Description string
	Category    string
	Version     string
	Containers  []*Container
}

// Container is one configuration container. SubContainers covers both
// nested sub-containers and choice branches, in document order, with the
// Kind discriminant telling them apart.
type Container struct {
	Name          string
	Kind          ContainerKind
	Multiplicity  Multiplicity
	Description   string
	Parameters    []*Parameter
	References    []*Reference
	SubContainers []*Container
}

// Parameter is one parameter definition. Default, Min, and Max hold the
// raw text values; the empty string means absent. Literals is populated
// for enumerations only.
type Parameter struct {
	Name         string
	Kind         ParameterKind
	Multiplicity Multiplicity
	Description  string
	Default      string
	Min          string
	Max          string
	Literals     []string
}

// Reference is one reference definition. The source schema carries at
// most one destination path, kept as a slice for generality.
type Reference struct {
	Name         string
	Kind         ReferenceKind
	Multiplicity Multiplicity
	Description  string
	Destinations []string
}
