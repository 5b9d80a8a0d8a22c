package constants

import "fmt"

const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
)

// Error message templates for role gates.
const (
	ErrOnlySuperAdminsCanAccess = "Only a super admin may access %s."
	ErrOnlyAdminsCanAccess      = "Only an admin may access %s."
)

func RoleErrorSuperAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperAdminsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

var AllRoles = []string{
	RoleSuperAdmin,
	RoleAdmin,
}
