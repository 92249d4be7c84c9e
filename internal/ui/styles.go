package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, highlights
	ColorHighlight = "205" // Magenta - selected items, borders
	ColorDanger    = "196" // Red - delete, errors
	ColorMuted     = "241" // Gray - hints
	ColorText      = "252" // Light gray - normal text
	ColorSuccess   = "42"  // Green - success toasts, enroll/create
	ColorWarning   = "214" // Yellow - edit
	ColorInfo      = "39"  // Blue - view details
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style

	Box       lipgloss.Style
	BoxDanger lipgloss.Style
	Card      lipgloss.Style // one course
	CardFocus lipgloss.Style // selected course

	CourseTitle lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	Hint        lipgloss.Style
	Empty       lipgloss.Style
	Label       lipgloss.Style
	Details     lipgloss.Style

	// Action buttons
	ActionView   lipgloss.Style
	ActionEdit   lipgloss.Style
	ActionDelete lipgloss.Style
	ActionEnroll lipgloss.Style
	ActionCreate lipgloss.Style

	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInfo)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2).
		Margin(1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	CardFocus: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	CourseTitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle(),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	ActionView:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorInfo)),
	ActionEdit:   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)),
	ActionDelete: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)),
	ActionEnroll: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)),
	ActionCreate: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true),
	ToastSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		PaddingLeft(1),
	ToastError: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorDanger)).
		PaddingLeft(1),
}
