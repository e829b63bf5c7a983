package valueobjects

import (
	"fmt"
	"strings"
)

// Role is the platform role of a user.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

var ValidRoles = map[Role]bool{
	RoleStudent: true,
	RoleTeacher: true,
	RoleAdmin:   true,
}

// ParseRole normalizes and validates a role string.
func ParseRole(value string) (Role, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	role := Role(normalized)
	if !ValidRoles[role] {
		return "", fmt.Errorf("invalid role: %s", value)
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsTeacher() bool {
	return r == RoleTeacher
}
