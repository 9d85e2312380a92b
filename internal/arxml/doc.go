// Package arxml parses AUTOSAR ECUC parameter-definition documents.
//
// An ARXML parameter definition describes a configuration module as a
// recursive tree of containers, parameters, and references, each carrying
// multiplicity constraints. This package locates the module-definition
// root inside a document, walks that tree, and produces an immutable
// Module value that the render and export packages project into ASCII
// trees and JSON documents.
package arxml
