package domain

import "strings"

// Role is the job function of an authenticated user.
type Role string

const (
	RoleEmployee   Role = "EMPLOYEE"
	RoleAccountant Role = "ACCOUNTANT"
	RoleSupervisor Role = "SUPERVISOR"
)

// ParseRole accepts the role case-insensitively.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleEmployee:
		return RoleEmployee, true
	case RoleAccountant:
		return RoleAccountant, true
	case RoleSupervisor:
		return RoleSupervisor, true
	default:
		return "", false
	}
}

// Actor is the identity performing an operation.
type Actor struct {
	UserID string `json:"userID"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
}
