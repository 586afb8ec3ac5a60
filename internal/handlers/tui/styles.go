package tui

import "github.com/charmbracelet/lipgloss"

// Theme colors
const (
	colorAccent    = "86"
	colorHighlight = "205"
	colorDanger    = "196"
	colorMuted     = "241"
	colorText      = "252"
)

var styles = struct {
	Header   lipgloss.Style
	Bio      lipgloss.Style
	Button   lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Card     lipgloss.Style
	Label    lipgloss.Style
	Normal   lipgloss.Style
	Status   lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style

	AlertBox   lipgloss.Style
	AlertTitle lipgloss.Style
}{
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorAccent)).
		MarginBottom(1),
	Bio: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)).
		MarginBottom(1),
	Button: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorHighlight)).
		Padding(0, 2).
		MarginRight(1),
	Active: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Foreground(lipgloss.Color(colorAccent)).
		Padding(0, 2).
		MarginRight(1),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Card: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(colorMuted)).
		PaddingLeft(1).
		MarginTop(1),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorHighlight)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorText)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorAccent)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(colorMuted)).
		Italic(true),

	AlertBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colorDanger)).
		Padding(1, 2).
		Margin(1),
	AlertTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorDanger)),
}
