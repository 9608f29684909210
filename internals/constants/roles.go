package constants

import "fmt"

// Role tags stored on a User row.
const (
	RoleTeacher   = "teacher"
	RoleStudent   = "student"
	RoleAdmin     = "admin"
	RoleClerk     = "clerk"
	RolePrincipal = "principal"
)

// Role error message templates
const (
	ErrOnlyTeachersCanAccess  = "Only teachers may access %s."
	ErrOnlyApproversCanAccess = "Only admins or the principal may access %s."
)

func RoleErrorTeacher(feature string) string {
	return fmt.Sprintf(ErrOnlyTeachersCanAccess, feature)
}

func RoleErrorApprover(feature string) string {
	return fmt.Sprintf(ErrOnlyApproversCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleTeacher,
		RoleStudent,
		RoleAdmin,
		RoleClerk,
		RolePrincipal,
	}

	TeacherOnly = []string{
		RoleTeacher,
	}

	// Leave approval is reserved for admin and principal.
	ApproverRoles = []string{
		RoleAdmin,
		RolePrincipal,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if role == r {
			return true
		}
	}
	return false
}
