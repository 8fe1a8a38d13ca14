package auth

// Role is the fixed privilege enumeration carried by every user record.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// DefaultRole is assigned when an account is created without an
// explicit role.
const DefaultRole = RoleViewer

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole maps a raw string to a Role, rejecting unknown values.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

// AllRoles lists the known roles from least to most privileged.
func AllRoles() []Role {
	return []Role{RoleViewer, RoleEditor, RoleAdmin}
}
