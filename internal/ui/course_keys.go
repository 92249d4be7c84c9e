package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"coursedeck/internal/session"
)

// courseKeyMap holds the course list bindings. It implements help.KeyMap, showing only
// the actions the session role has.
type courseKeyMap struct {
	role   session.Role
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	View   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Create key.Binding
	Enroll key.Binding
}

func newCourseKeyMap(role session.Role) courseKeyMap {
	return courseKeyMap{
		role:   role,
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
		Top:    key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		View:   key.NewBinding(key.WithKeys("enter", "v"), key.WithHelp("enter", "view details")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Create: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		Enroll: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "enroll")),
	}
}

// ShortHelp implements help.KeyMap.
func (k courseKeyMap) ShortHelp() []key.Binding {
	base := []key.Binding{k.Down, k.Up, k.View}
	switch k.role {
	case session.RoleInstructor:
		return append(base, k.Edit, k.Delete, k.Create)
	case session.RoleLearner:
		return append(base, k.Enroll)
	}
	return base
}

// FullHelp implements help.KeyMap.
func (k courseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Top, k.Bottom}, k.ShortHelp()[2:]}
}
