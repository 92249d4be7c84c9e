package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeCourses AppMode = iota
	ModeRoute
)

func (m AppMode) String() string {
	switch m {
	case ModeCourses:
		return "Courses"
	case ModeRoute:
		return "Route"
	default:
		return "Unknown"
	}
}
