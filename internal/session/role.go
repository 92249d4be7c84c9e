package session

// Role is the permission tier of the current session.
type Role int

const (
	RoleLearner Role = iota
	RoleInstructor
)

// roleInstructorValue is the persisted value that selects RoleInstructor.
const roleInstructorValue = "instructor"

// ParseRole maps a persisted role value to a Role.
// Only "instructor" selects RoleInstructor; everything else, including "", is a learner.
func ParseRole(s string) Role {
	if s == roleInstructorValue {
		return RoleInstructor
	}
	return RoleLearner
}

func (r Role) String() string {
	switch r {
	case RoleInstructor:
		return roleInstructorValue
	case RoleLearner:
		return "learner"
	default:
		return "unknown"
	}
}
