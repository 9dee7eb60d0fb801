package models

import "fmt"

// Role is the closed set of user roles. Role-scoped queries dispatch on this
// type so that an unknown role is rejected at the boundary instead of falling
// through a string switch.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RolePRL      Role = "prl"
	RolePL       Role = "pl"
	RoleAdmin    Role = "admin"
)

// ParseRole validates a raw role string and returns the corresponding Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleStudent, RoleLecturer, RolePRL, RolePL, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("invalid role %q", s)
}

// IsFacultyScoped reports whether the role only sees rows belonging to its
// own faculty.
func (r Role) IsFacultyScoped() bool {
	return r == RolePRL || r == RolePL
}

// ValidRaterRole reports whether a role may author ratings.
func ValidRaterRole(s string) bool {
	switch Role(s) {
	case RoleStudent, RoleLecturer, RolePRL, RolePL:
		return true
	}
	return false
}
