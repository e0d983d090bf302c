package auth

import (
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

// Permission constants restrict access to dashboard areas.
const (
	// PermDashboardView allows viewing the dashboard overview.
	PermDashboardView = "dashboard.view"

	// PermContentManage allows CRUD over all site content: posts, pages,
	// sections, settings, media, chatbot responses, services,
	// certifications, testimonials and navigation.
	PermContentManage = "content.manage"

	// PermMessagesManage allows reading and triaging contact messages.
	PermMessagesManage = "messages.manage"

	// PermUsersManage allows managing dashboard user accounts.
	PermUsersManage = "users.manage"
)

// rolePermissions maps each role to its permission set. Roles are fixed;
// there is no per-user permission assignment.
var rolePermissions = map[models.Role][]string{ //nolint:gochecknoglobals
	models.RoleAdmin: {
		PermDashboardView,
		PermContentManage,
		PermMessagesManage,
		PermUsersManage,
	},
	models.RoleEditor: {
		PermDashboardView,
		PermContentManage,
		PermMessagesManage,
	},
}

// RoleHasPermission reports whether the role grants the permission.
func RoleHasPermission(role models.Role, permission string) bool {
	for _, p := range rolePermissions[role] {
		if p == permission {
			return true
		}
	}

	return false
}

// RolePermissions returns the permission set of a role.
func RolePermissions(role models.Role) []string {
	perms := rolePermissions[role]
	out := make([]string, len(perms))
	copy(out, perms)

	return out
}
