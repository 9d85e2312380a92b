package export

import (
	"encoding/json"

	"github.com/guu8hc/ecuckit/internal/arxml"
)

// Marshal renders v as tab-indented JSON with a trailing newline, the
// convention for every JSON artifact written by this tool.
func Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// DescriptiveFromFile parses an ARXML document and returns its encoded
// descriptive projection.
func DescriptiveFromFile(path string) ([]byte, error) {
	mod, err := arxml.Parse(path)
	if err != nil {
		return nil, err
	}
	return Marshal(Descriptive(mod))
}

// CompactFromFile parses an ARXML document and returns its encoded
// compact projection.
func CompactFromFile(path string) ([]byte, error) {
	mod, err := arxml.Parse(path)
	if err != nil {
		return nil, err
	}
	return Marshal(Compact(mod))
}
