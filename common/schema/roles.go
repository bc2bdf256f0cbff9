/******************************************************************************
 * Copyright (c) 2024-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package schema

const (
	RoleNone = iota
	RoleUser
	RoleAuditor
	RoleAdmin
	RoleSuperAdmin
)

var (
	RolesAll    = []int{RoleUser, RoleAuditor, RoleAdmin, RoleSuperAdmin}
	RolesAdmins = []int{RoleAdmin, RoleSuperAdmin}
)

// RoleName returns a display name for a role
func RoleName(role int) string {
	switch role {
	case RoleUser:
		return "user"
	case RoleAuditor:
		return "auditor"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "superadmin"
	default:
		return "none"
	}
}

// ReadsAllProjects reports whether a role bypasses project grants
func ReadsAllProjects(role int) bool {
	return role == RoleAuditor || role == RoleAdmin || role == RoleSuperAdmin
}
