// Package tui provides terminal output components for gitex.
//
// Styling uses Lip Gloss with adaptive colors for light/dark terminals.
// Call CheckNoColor() at the start of commands to respect the NO_COLOR
// environment variable; colors are also disabled when TERM=dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorSuccess is green, used for branches ahead of their remote.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for branches behind their remote.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for gone remote references.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for in-sync branches and secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
)

// TableStyles holds the styles used by Table.
type TableStyles struct {
	Header  lipgloss.Style
	Ahead   lipgloss.Style
	Behind  lipgloss.Style
	Gone    lipgloss.Style
	InSync  lipgloss.Style
	Current lipgloss.Style
}

// NewTableStyles creates the default table styles.
func NewTableStyles() *TableStyles {
	return &TableStyles{
		Header:  lipgloss.NewStyle().Bold(true),
		Ahead:   lipgloss.NewStyle().Foreground(ColorSuccess),
		Behind:  lipgloss.NewStyle().Foreground(ColorWarning),
		Gone:    lipgloss.NewStyle().Foreground(ColorError),
		InSync:  lipgloss.NewStyle().Foreground(ColorMuted),
		Current: lipgloss.NewStyle().Bold(true),
	}
}

// CheckNoColor disables color output when the NO_COLOR environment variable
// is set or the terminal is too dumb to render it.
func CheckNoColor() {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
