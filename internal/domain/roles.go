package domain

type Role string

const (
	// Member can sign in to the dashboard and manage community content.
	RoleMember Role = "member"
	// Admin can additionally manage accounts (activate/deactivate users).
	RoleAdmin Role = "admin"
)

func IsValidRole(r string) bool {
	return r == string(RoleMember) || r == string(RoleAdmin)
}

// RoleRank: bigger => higher privilege
func RoleRank(r string) int {
	switch r {
	case string(RoleMember):
		return 1
	case string(RoleAdmin):
		return 2
	default:
		return 0
	}
}
