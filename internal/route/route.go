// Package route builds the router paths the course screens navigate to.
package route

import "net/url"

// CreatePath is the course creation screen.
const CreatePath = "/courses/create"

// ViewPath is the detail screen for a course.
func ViewPath(id string) string {
	return "/courses/view/" + url.PathEscape(id)
}

// UpdatePath is the edit screen for a course.
func UpdatePath(id string) string {
	return "/courses/update/" + url.PathEscape(id)
}
