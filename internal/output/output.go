// Package output provides styled terminal output for the ecuckit CLI.
package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("green")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	verboseMode bool
)

// SetVerbose enables or disables verbose output for debugging.
// This should be called by the CLI when the --verbose flag is set.
func SetVerbose(v bool) {
	verboseMode = v
}

// Header prints a bold, underlined section heading.
// Use this to separate per-file output in multi-file runs.
//
// Example:
//
//	output.Header("testdata/com_paramdef.arxml")
func Header(msg string) {
	fmt.Println(headerStyle.Render(msg))
}

// Success prints a success message with ✅ emoji and green color.
// Use this for completed operations.
//
// Example:
//
//	output.Success("Converted 3 definitions")
func Success(msg string) {
	fmt.Println(successStyle.Render("✅ " + msg))
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
//
// Example:
//
//	output.Error("Cannot parse com_paramdef.arxml: unexpected EOF")
func Error(msg string) {
	fmt.Println(errorStyle.Render("❌ " + msg))
}

// Info prints an informational message with ℹ️ emoji and cyan color.
// Use this for status updates or explanations.
//
// Example:
//
//	output.Info("Next steps:")
func Info(msg string) {
	fmt.Println(infoStyle.Render("ℹ️  " + msg))
}

// Step prints an indented step message in gray.
// Use this for actionable next steps or sub-items.
//
// Example:
//
//	output.Step("ecuckit tree testdata/com_paramdef.arxml")
func Step(msg string) {
	fmt.Println(stepStyle.Render("   " + msg))
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
// Use this for detailed progress information.
//
// Example:
//
//	output.Verbose("Parsing testdata/com_paramdef.arxml")
func Verbose(msg string) {
	if verboseMode {
		fmt.Println(stepStyle.Render("🔍 " + msg))
	}
}
