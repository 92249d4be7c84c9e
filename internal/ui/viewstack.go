package ui

// routeEntry is one screen in the navigation history.
type routeEntry struct {
	Path string
	View View
}

// ViewStack manages navigation history (push on navigate, pop on Esc).
// The course list sits underneath and is never on the stack.
type ViewStack struct {
	entries []routeEntry
}

// Push adds a screen for path to the top of the stack.
func (s *ViewStack) Push(path string, v View) {
	s.entries = append(s.entries, routeEntry{Path: path, View: v})
}

// Pop removes the top screen. Returns false if the stack is empty.
func (s *ViewStack) Pop() (View, bool) {
	if len(s.entries) == 0 {
		return nil, false
	}
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top.View, true
}

// Peek returns the top screen without removing it, or nil.
func (s *ViewStack) Peek() View {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1].View
}

// SetTop replaces the view of the top entry (after an Update).
func (s *ViewStack) SetTop(v View) {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1].View = v
}

// CurrentPath returns the path of the top screen, or "" when only the list is showing.
func (s *ViewStack) CurrentPath() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[len(s.entries)-1].Path
}

// Paths returns the navigation history, oldest first.
func (s *ViewStack) Paths() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Path
	}
	return out
}

// Len returns the number of screens on the stack.
func (s *ViewStack) Len() int {
	return len(s.entries)
}
