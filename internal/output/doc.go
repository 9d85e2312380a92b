// Package output provides styled terminal output for the ecuckit CLI.
//
// # Overview
//
// Every ecuckit subcommand routes its user-facing feedback through this
// package so progress, hints, and failures look the same everywhere.
// Machine output (rendered trees, JSON documents, path listings) never
// passes through here; it goes to stdout or files untouched.
//
// # Usage
//
// Import the package and call the output functions:
//
//	import "github.com/guu8hc/ecuckit/internal/output"
//
//	output.Success("Converted 3 definitions")
//	output.Info("Next steps:")
//	output.Step("ecuckit serve")
//	output.Error("Cannot parse com_paramdef.arxml")
//
// # Verbose Mode
//
// Enable verbose output for debugging:
//
//	output.SetVerbose(true)
//	output.Verbose("This only prints in verbose mode")
//
// # Styling
//
// The package uses lipgloss for terminal styling, but abstracts
// these details away from callers:
//
//   - Header: bold underlined
//   - Success: ✅ green bold
//   - Error: ❌ red bold
//   - Info: ℹ️ cyan
//   - Step: indented gray
//   - Verbose: 🔍 gray (when enabled)
package output
