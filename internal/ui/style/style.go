// Package style provides shared UI styling primitives including colors and
// icons for consistent log output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)

// ErrorPrefix is the style of the icon leading error lines.
func ErrorPrefix(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Red).Bold(true)
}

// WarningPrefix is the style of the icon leading warning lines.
func WarningPrefix(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Yellow).Bold(true)
}
