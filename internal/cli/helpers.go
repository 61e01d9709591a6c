package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// Global flags (will be set from cmd package)
var (
	quiet   bool
	noColor bool
)

// SetGlobalFlags sets the global flag values from the cmd package
func SetGlobalFlags(q, nc bool) {
	quiet = q
	noColor = nc
}

// wrapWidth is the column long error details are wrapped at.
const wrapWidth = 100

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

// PrintSuccess prints a success message unless quiet mode is enabled
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "OK: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", render(successStyle, "✓"), msg)
}

// PrintInfo prints an info message unless quiet mode is enabled
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	if quiet {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "INFO: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", render(infoStyle, "ℹ"), msg)
}

// PrintResult prints a result line. Quiet mode does not silence it.
func PrintResult(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// PrintWarning prints a warning message to w
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if noColor {
		fmt.Fprintf(w, "WARNING: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", render(warningStyle, "⚠"), msg)
}

// PrintError prints an error message, wrapping long details.
func PrintError(w io.Writer, format string, args ...interface{}) {
	msg := wordwrap.String(fmt.Sprintf(format, args...), wrapWidth)
	if noColor {
		fmt.Fprintf(w, "ERROR: %s\n", msg)
		return
	}
	fmt.Fprintf(w, "%s %s\n", render(errorStyle, "✗"), msg)
}

// Fatal prints err to stderr and exits with status 1.
func Fatal(err error) {
	PrintError(os.Stderr, "%v", err)
	os.Exit(1)
}
