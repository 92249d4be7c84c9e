package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"coursedeck/internal/course"
	"coursedeck/internal/route"
	"coursedeck/internal/session"
	"coursedeck/internal/ui/textutil"
)

// Notification texts.
const (
	MsgDeleted       = "Course deleted successfully"
	MsgDeleteDenied  = "You are not authorized to delete this course."
	MsgDeleteFailed  = "Failed to delete course. Please try again later."
	MsgLoadFailed    = "Failed to load courses."
	enrollMsgPattern = "You have successfully enrolled in \"%s\"!"
)

// EnrollMessage is the notification shown after enrolling in title.
func EnrollMessage(title string) string {
	return fmt.Sprintf(enrollMsgPattern, title)
}

// Action is a per-course control.
type Action int

const (
	ActionViewDetails Action = iota
	ActionEdit
	ActionDelete
	ActionEnroll
)

// Label is the button text for the action.
func (a Action) Label() string {
	switch a {
	case ActionViewDetails:
		return "View Details"
	case ActionEdit:
		return "Edit Course"
	case ActionDelete:
		return "Delete Course"
	case ActionEnroll:
		return "Enroll Now"
	default:
		return "?"
	}
}

// CreateLabel is the top-level create control shown to instructors.
const CreateLabel = "Create New Course"

// CourseService is the part of the course client the view uses.
type CourseService interface {
	List(ctx context.Context) ([]course.Course, error)
	Delete(ctx context.Context, id, token string) error
}

// CourseView lists courses with actions that depend on the session role.
//
// Courses only ever changes two ways: replaced by the mount-time fetch, or filtered after
// the server confirms a delete.
type CourseView struct {
	Courses  []course.Course
	Selected int

	ctx     context.Context
	service CourseService
	session session.Session
	logger  *slog.Logger

	confirm *ConfirmModal
	loading bool
	spinner spinner.Model
	keys    courseKeyMap
	help    help.Model
	width   int
}

// Ensure CourseView implements View.
var _ View = (*CourseView)(nil)

// NewCourseView creates the course list. The session is fixed for the view's lifetime.
func NewCourseView(ctx context.Context, svc CourseService, sess session.Session, logger *slog.Logger) *CourseView {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &CourseView{
		ctx:     ctx,
		service: svc,
		session: sess,
		logger:  logger,
		spinner: s,
		keys:    newCourseKeyMap(sess.Role),
		help:    newHelpModel(),
	}
}

// Session returns the session the view was built with.
func (v *CourseView) Session() session.Session {
	return v.session
}

// Loading reports whether the initial fetch is still outstanding.
func (v *CourseView) Loading() bool {
	return v.loading
}

// Confirm returns the open confirmation modal, or nil.
func (v *CourseView) Confirm() *ConfirmModal {
	return v.confirm
}

// CanCreate reports whether the top-level create control is shown.
func (v *CourseView) CanCreate() bool {
	switch v.session.Role {
	case session.RoleInstructor:
		return true
	case session.RoleLearner:
		return false
	}
	return false
}

// Actions returns the controls shown on every course for the session role.
func (v *CourseView) Actions() []Action {
	switch v.session.Role {
	case session.RoleInstructor:
		return []Action{ActionViewDetails, ActionEdit, ActionDelete}
	case session.RoleLearner:
		return []Action{ActionViewDetails, ActionEnroll}
	}
	return []Action{ActionViewDetails}
}

func (v *CourseView) hasAction(a Action) bool {
	for _, have := range v.Actions() {
		if have == a {
			return true
		}
	}
	return false
}

// Init implements View. Issues the single fetch of the course collection.
func (v *CourseView) Init() tea.Cmd {
	v.loading = true
	v.logger.Debug("fetching courses")
	return tea.Batch(v.spinner.Tick, loadCoursesCmd(v.ctx, v.service))
}

// ViewDetails navigates to the detail screen of id.
func (v *CourseView) ViewDetails(id string) tea.Cmd {
	return navigateCmd(route.ViewPath(id))
}

// Edit navigates to the update screen of id (instructors only).
func (v *CourseView) Edit(id string) tea.Cmd {
	if !v.hasAction(ActionEdit) {
		return nil
	}
	return navigateCmd(route.UpdatePath(id))
}

// Create navigates to the creation screen (instructors only).
func (v *CourseView) Create() tea.Cmd {
	if !v.CanCreate() {
		return nil
	}
	return navigateCmd(route.CreatePath)
}

// RequestDelete opens the delete confirmation for id (instructors only).
// Nothing is sent until the user confirms.
func (v *CourseView) RequestDelete(id string) tea.Cmd {
	if !v.hasAction(ActionDelete) {
		return nil
	}
	c, ok := v.find(id)
	if !ok {
		return nil
	}
	v.confirm = NewDeleteCourseConfirmModal(c)
	return v.confirm.Init()
}

// Enroll notifies the learner. No request is sent and nothing is persisted.
func (v *CourseView) Enroll(c course.Course) tea.Cmd {
	if !v.hasAction(ActionEnroll) {
		return nil
	}
	v.logger.Info("enrolling in course", "course_id", c.ID, "title", c.Title)
	return notifyCmd(NotifySuccess, EnrollMessage(c.Title))
}

// deleteCourse runs after confirmation.
func (v *CourseView) deleteCourse(id string) tea.Cmd {
	if !v.session.HasToken() {
		// Intentionally silent for the user; only the log records it.
		v.logger.Warn("delete aborted: no auth token in session", "course_id", id)
		return nil
	}
	v.logger.Info("deleting course", "course_id", id)
	return deleteCourseCmd(v.ctx, v.service, id, v.session.Token)
}

// Update implements View.
func (v *CourseView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.help.Width = msg.Width
		return v, nil
	case spinner.TickMsg:
		if v.loading {
			var cmd tea.Cmd
			v.spinner, cmd = v.spinner.Update(msg)
			return v, cmd
		}
		return v, nil
	case CoursesLoadedMsg:
		return v, v.handleLoaded(msg)
	case ConfirmDeleteMsg:
		v.confirm = nil
		return v, v.deleteCourse(msg.ID)
	case DismissModalMsg:
		v.confirm = nil
		return v, nil
	case CourseDeletedMsg:
		v.Courses = course.Remove(v.Courses, msg.ID)
		v.clampSelection()
		v.logger.Info("course deleted", "course_id", msg.ID)
		return v, notifyCmd(NotifySuccess, MsgDeleted)
	case CourseDeleteFailedMsg:
		v.logger.Error("delete course failed", "course_id", msg.ID, "error", msg.Err)
		if course.IsUnauthorized(msg.Err) {
			return v, notifyCmd(NotifyError, MsgDeleteDenied)
		}
		return v, notifyCmd(NotifyError, MsgDeleteFailed)
	case tea.KeyMsg:
		if v.confirm != nil {
			_, cmd := v.confirm.Update(msg)
			return v, cmd
		}
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *CourseView) handleLoaded(msg CoursesLoadedMsg) tea.Cmd {
	v.loading = false
	if msg.Err != nil {
		v.logger.Error("fetch courses failed", "error", msg.Err)
		return notifyCmd(NotifyError, MsgLoadFailed)
	}
	v.Courses = msg.Courses
	v.clampSelection()
	v.logger.Info("courses loaded", "count", len(msg.Courses))
	return nil
}

func (v *CourseView) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Down):
		if v.Selected < len(v.Courses)-1 {
			v.Selected++
		}
		return nil
	case key.Matches(msg, v.keys.Up):
		if v.Selected > 0 {
			v.Selected--
		}
		return nil
	case key.Matches(msg, v.keys.Top):
		v.Selected = 0
		return nil
	case key.Matches(msg, v.keys.Bottom):
		v.Selected = max(len(v.Courses)-1, 0)
		return nil
	case key.Matches(msg, v.keys.Create):
		return v.Create()
	}

	c, ok := v.selected()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, v.keys.View):
		return v.ViewDetails(c.ID)
	case key.Matches(msg, v.keys.Edit):
		return v.Edit(c.ID)
	case key.Matches(msg, v.keys.Delete):
		return v.RequestDelete(c.ID)
	case key.Matches(msg, v.keys.Enroll):
		return v.Enroll(c)
	}
	return nil
}

func (v *CourseView) selected() (course.Course, bool) {
	if v.Selected < 0 || v.Selected >= len(v.Courses) {
		return course.Course{}, false
	}
	return v.Courses[v.Selected], true
}

func (v *CourseView) find(id string) (course.Course, bool) {
	for _, c := range v.Courses {
		if c.ID == id {
			return c, true
		}
	}
	return course.Course{}, false
}

func (v *CourseView) clampSelection() {
	if v.Selected >= len(v.Courses) {
		v.Selected = len(v.Courses) - 1
	}
	if v.Selected < 0 {
		v.Selected = 0
	}
}

// View implements View.
func (v *CourseView) View() string {
	width := v.width
	if width == 0 {
		width = 80 // tests and first frame
	}

	var b strings.Builder
	header := Styles.Title.Render("Explore Our Courses")
	if v.CanCreate() {
		header += "  " + Styles.ActionCreate.Render("[c] "+CreateLabel)
	}
	b.WriteString(header + "\n\n")

	if v.confirm != nil {
		b.WriteString(v.confirm.View())
		return b.String()
	}

	switch {
	case v.loading:
		b.WriteString(v.spinner.View() + " " + Styles.Muted.Render("Loading courses…") + "\n")
	case len(v.Courses) == 0:
		b.WriteString(Styles.Empty.Render("No courses yet.") + "\n")
	default:
		for i, c := range v.Courses {
			b.WriteString(v.renderCourse(c, i == v.Selected, width) + "\n")
		}
	}

	b.WriteString("\n" + v.help.View(v.keys))
	return b.String()
}

func (v *CourseView) renderCourse(c course.Course, selected bool, width int) string {
	inner := width - 4 // border + padding
	if inner < 10 {
		inner = 10
	}
	lines := []string{
		Styles.CourseTitle.Render(textutil.OneLine(c.Title, inner)),
		Styles.Normal.Render(textutil.OneLine(c.Description, inner)),
		Styles.Muted.Render(textutil.OneLine("Instructor: "+c.InstructorName(), inner)),
		v.renderActions(),
	}
	style := Styles.Card
	if selected {
		style = Styles.CardFocus
	}
	return style.Render(strings.Join(lines, "\n"))
}

func (v *CourseView) renderActions() string {
	actions := v.Actions()
	parts := make([]string, 0, len(actions))
	for _, a := range actions {
		switch a {
		case ActionViewDetails:
			parts = append(parts, Styles.ActionView.Render("[enter] "+a.Label()))
		case ActionEdit:
			parts = append(parts, Styles.ActionEdit.Render("[e] "+a.Label()))
		case ActionDelete:
			parts = append(parts, Styles.ActionDelete.Render("[d] "+a.Label()))
		case ActionEnroll:
			parts = append(parts, Styles.ActionEnroll.Render("[n] "+a.Label()))
		}
	}
	return strings.Join(parts, "  ")
}
