package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// loadCoursesCmd fetches the course collection once. The result (or error) arrives as
// CoursesLoadedMsg.
func loadCoursesCmd(ctx context.Context, svc CourseService) tea.Cmd {
	return func() tea.Msg {
		if svc == nil {
			return CoursesLoadedMsg{Courses: nil}
		}
		courses, err := svc.List(ctx)
		return CoursesLoadedMsg{Courses: courses, Err: err}
	}
}

// deleteCourseCmd issues one delete for id. Nothing guards against a second in-flight
// delete for the same id.
func deleteCourseCmd(ctx context.Context, svc CourseService, id, token string) tea.Cmd {
	return func() tea.Msg {
		if err := svc.Delete(ctx, id, token); err != nil {
			return CourseDeleteFailedMsg{ID: id, Err: err}
		}
		return CourseDeletedMsg{ID: id}
	}
}

// navigateCmd hands path to the router.
func navigateCmd(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// notifyCmd emits a notification.
func notifyCmd(level NotifyLevel, text string) tea.Cmd {
	return func() tea.Msg { return NotifyMsg{Level: level, Text: text} }
}
