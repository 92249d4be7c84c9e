// Package course holds the course record and the REST client for the course service.
package course

// Instructor is the owning instructor as embedded in a course record.
type Instructor struct {
	ID       string `json:"_id,omitempty"`
	Username string `json:"username"`
}

// Course is a server-managed course record. The client never edits one in place.
type Course struct {
	ID          string     `json:"_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Instructor  Instructor `json:"instructor"`
}

// InstructorName returns the display name of the course's instructor.
func (c Course) InstructorName() string {
	return c.Instructor.Username
}

// Remove returns a copy of courses without the course whose ID is id.
// The input slice is not modified.
func Remove(courses []Course, id string) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if c.ID != id {
			out = append(out, c)
		}
	}
	return out
}
