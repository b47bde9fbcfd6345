package domain

import "strings"

// UserRole is the role carried in the caller's access token.
type UserRole string

const (
	RoleViewer     UserRole = "viewer"
	RoleAccountant UserRole = "accountant"
	RoleAdmin      UserRole = "admin"
)

var roleRank = map[UserRole]int{
	RoleViewer:     1,
	RoleAccountant: 2,
	RoleAdmin:      3,
}

// ParseUserRole normalises a role claim; unknown roles map to the empty role.
func ParseUserRole(s string) UserRole {
	r := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := roleRank[r]; !ok {
		return ""
	}
	return r
}

// Satisfies reports whether r meets or exceeds the required role.
func (r UserRole) Satisfies(required UserRole) bool {
	return roleRank[r] > 0 && roleRank[r] >= roleRank[required]
}
