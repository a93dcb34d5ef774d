package constants

// Roles carried in access-token claims. Only super and admin bypass the
// company-ownership check; the remaining roles are company-scoped.
const (
	RoleSuper      = "super"
	RoleAdmin      = "admin"
	RoleManager    = "manager"
	RoleSupervisor = "supervisor"
	RoleOperator   = "operator"
	RoleSales      = "sales"
	RoleAccounts   = "accounts"
	RoleTechnical  = "technical"
)

// IsPrivileged reports whether the role may act on any company.
func IsPrivileged(role string) bool {
	return role == RoleSuper || role == RoleAdmin
}
