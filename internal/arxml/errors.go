package arxml

import "fmt"

// MalformedDocumentError reports input that could not be parsed as
// well-formed XML. It wraps the underlying decoder error.
type MalformedDocumentError struct {
	Path string
	Err  error
}

// Error returns a formatted error message.
func (e *MalformedDocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("malformed ARXML document: %v", e.Err)
	}
	return fmt.Sprintf("malformed ARXML document %s: %v", e.Path, e.Err)
}

// Unwrap returns the decoder error.
func (e *MalformedDocumentError) Unwrap() error { return e.Err }

// SchemaRootNotFoundError reports a well-formed document in which
// neither recognized root shape is present.
type SchemaRootNotFoundError struct {
	Path string
}

// Error returns a formatted error message.
func (e *SchemaRootNotFoundError) Error() string {
	if e.Path == "" {
		return "no ECUC-MODULE-DEF or ECUC-DESTINATION-URI-DEF root found"
	}
	return fmt.Sprintf("no ECUC-MODULE-DEF or ECUC-DESTINATION-URI-DEF root found in %s", e.Path)
}
