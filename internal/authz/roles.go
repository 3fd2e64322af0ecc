package authz

const (
	RoleVendedor = 10
	RoleCliente  = 20
	RoleAdmin    = 50
)

// IsStaff reports whether the role may operate the back office.
func IsStaff(roleID int) bool {
	return roleID == RoleVendedor || roleID == RoleAdmin
}

func IsAdmin(roleID int) bool {
	return roleID == RoleAdmin
}

// IsPortal reports whether the role only sees the self-service portal.
func IsPortal(roleID int) bool {
	return roleID == RoleCliente
}

// RoleName maps a role ID to its stored label.
func RoleName(roleID int) string {
	switch roleID {
	case RoleAdmin:
		return "admin"
	case RoleVendedor:
		return "vendedor"
	case RoleCliente:
		return "cliente"
	}
	return ""
}

// RoleID is the inverse of RoleName; 0 means unknown.
func RoleID(name string) int {
	switch name {
	case "admin":
		return RoleAdmin
	case "vendedor":
		return RoleVendedor
	case "cliente":
		return RoleCliente
	}
	return 0
}
