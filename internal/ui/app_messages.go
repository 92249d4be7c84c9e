package ui

import "coursedeck/internal/course"

// CoursesLoadedMsg carries the result of the fetch issued when the course list mounts.
type CoursesLoadedMsg struct {
	Courses []course.Course
	Err     error
}

// CourseDeletedMsg is sent when the server confirmed a delete.
type CourseDeletedMsg struct {
	ID string
}

// CourseDeleteFailedMsg is sent when the server rejected a delete or the call failed.
type CourseDeleteFailedMsg struct {
	ID  string
	Err error
}

// ConfirmDeleteMsg is sent when the user accepts the delete confirmation.
type ConfirmDeleteMsg struct {
	ID string
}

// DismissModalMsg is sent when user cancels a modal (Esc or n).
type DismissModalMsg struct{}

// NavigateMsg asks the router to show path (see internal/route).
type NavigateMsg struct {
	Path string
}

// NotifyMsg is a fire-and-forget user notification.
type NotifyMsg struct {
	Level NotifyLevel
	Text  string
}

// toastExpiredMsg removes the toast with the given id.
type toastExpiredMsg struct {
	ID int
}
