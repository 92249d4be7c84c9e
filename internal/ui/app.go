package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"coursedeck/internal/route"
	"coursedeck/internal/session"
)

// Deps are the collaborators the app is built from.
type Deps struct {
	Context       context.Context
	Service       CourseService
	Session       session.Session
	Logger        *slog.Logger
	ToastDuration time.Duration
}

// AppModel is the root model. It shows the course list, or the top route screen after a
// navigation, with notifications underneath.
type AppModel struct {
	Mode       AppMode
	Courses    *CourseView
	Routes     ViewStack
	Toasts     *Toasts
	KeyHandler *KeyHandler
	logger     *slog.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(deps Deps) *AppModel {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	courses := NewCourseView(deps.Context, deps.Service, deps.Session, logger)

	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindForRoles("SPC c", navigateCmd(route.CreatePath), "Create course",
		[]session.Role{session.RoleInstructor})

	return &AppModel{
		Mode:       ModeCourses,
		Courses:    courses,
		Toasts:     NewToasts(deps.ToastDuration),
		KeyHandler: NewKeyHandler(reg, deps.Session.Role),
		logger:     logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Courses.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case NotifyMsg:
		return a, a.Toasts.Push(msg)
	case toastExpiredMsg:
		a.Toasts.Expire(msg.ID)
		return a, nil
	case NavigateMsg:
		return a, a.navigate(msg.Path)
	case tea.WindowSizeMsg:
		_, cmd := a.Courses.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		// An open modal owns the keyboard.
		if a.Mode == ModeCourses && a.Courses.Confirm() != nil {
			_, cmd := a.Courses.Update(msg)
			return a, cmd
		}
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		if a.Mode == ModeRoute && msg.String() == "esc" {
			a.back()
			return a, nil
		}
	}

	if a.Mode == ModeRoute {
		if top := a.Routes.Peek(); top != nil {
			v, cmd := top.Update(msg)
			a.Routes.SetTop(v)
			if _, isKey := msg.(tea.KeyMsg); isKey {
				return a, cmd
			}
			// Course results still land while a route screen is up.
			_, listCmd := a.Courses.Update(msg)
			return a, tea.Batch(cmd, listCmd)
		}
	}
	_, cmd := a.Courses.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if toasts := a.Toasts.View(); toasts != "" {
		base += "\n\n" + toasts
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if a.Mode == ModeRoute {
		if top := a.Routes.Peek(); top != nil {
			return top
		}
	}
	return a.Courses
}

func (a *AppModel) navigate(path string) tea.Cmd {
	a.logger.Debug("navigate", "path", path)
	v := NewRouteView(path)
	a.Routes.Push(path, v)
	a.Mode = ModeRoute
	return v.Init()
}

func (a *AppModel) back() {
	a.Routes.Pop()
	if a.Routes.Len() == 0 {
		a.Mode = ModeCourses
	}
}
