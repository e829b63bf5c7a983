// Package auth provides simple role and ownership checks. Anything richer than
// an equality test on role or course ownership is out of scope here.
package auth

import "github.com/edulane/edulane/internal/shared/constants"

// IsAdmin checks if the user has the platform admin role
func IsAdmin(role string) bool {
	return role == constants.RoleAdmin
}

// IsTeacher checks if the user has the teacher role
func IsTeacher(role string) bool {
	return role == constants.RoleTeacher
}

// CanManageCourse reports whether the caller may administer a course: platform
// admins and the owning teacher may; everyone else may not. Managers also
// bypass the enrollment state machine on read paths.
func CanManageCourse(userID uint, role string, courseOwnerID uint) bool {
	if IsAdmin(role) {
		return true
	}
	return userID != 0 && userID == courseOwnerID
}
