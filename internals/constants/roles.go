package constants

import "fmt"

const (
	RoleLearner = "learner"
	RoleAdmin   = "admin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess   = "❌ Apenas administradores podem acessar %s."
	ErrOnlyLearnersCanAccess = "❌ Apenas colaboradores podem acessar %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorLearner(feature string) string {
	return fmt.Sprintf(ErrOnlyLearnersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleLearner,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
