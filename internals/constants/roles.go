package constants

import "fmt"

const (
	RoleAdmin     = "ADMIN"
	RoleSecretary = "SECRETARY"
	RoleTeacher   = "TEACHER"
)

// Role error message templates
const (
	ErrOnlySecretariesCanAccess = "Only the secretary role may access the %s feature."
	ErrOnlyAdminsCanAccess      = "Only admins may access the %s feature."
)

func RoleErrorSecretary(feature string) string {
	return fmt.Sprintf(ErrOnlySecretariesCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

/* ==========================
   Grouped Role Slices
========================== */

var (
	AllRoles = []string{
		RoleAdmin,
		RoleSecretary,
		RoleTeacher,
	}

	SecretaryOnly = []string{
		RoleSecretary,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	SecretaryAndAdmin = []string{
		RoleSecretary,
		RoleAdmin,
	}
)
