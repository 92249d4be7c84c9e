package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// RouteView stands in for a screen reached by navigation (detail, edit, create).
// Those screens are served elsewhere; this one only shows where the router was sent.
type RouteView struct {
	Path string
}

var _ View = (*RouteView)(nil)

// NewRouteView creates a placeholder screen for path.
func NewRouteView(path string) *RouteView {
	return &RouteView{Path: path}
}

// Init implements View.
func (r *RouteView) Init() tea.Cmd { return nil }

// Update implements View. Esc is handled by the app (pops the stack).
func (r *RouteView) Update(msg tea.Msg) (View, tea.Cmd) { return r, nil }

// View implements View.
func (r *RouteView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Navigated") + "\n\n")
	b.WriteString(Styles.Normal.Render(r.Path) + "\n\n")
	b.WriteString(Styles.Hint.Render("Esc: back to courses"))
	return b.String()
}
