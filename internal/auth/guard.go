package auth

import "context"

// RoleRequirement declares the set of roles permitted to invoke an
// operation. Requirements are built once at route registration and
// never mutated afterwards. A nil requirement means unrestricted.
type RoleRequirement struct {
	Roles []Role
}

// NewRoleRequirement builds a requirement from the allowed roles.
func NewRoleRequirement(roles ...Role) *RoleRequirement {
	return &RoleRequirement{Roles: roles}
}

// Permits reports whether the given role is in the allowed set. A nil
// requirement permits every role.
func (r *RoleRequirement) Permits(role Role) bool {
	if r == nil {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// AccessGuard decides role based access for protected operations.
// Denial is a normal outcome, not an error.
type AccessGuard struct {
	directory UserFinder
	logger    Logger
}

// NewAccessGuard creates a guard that resolves roles through the given
// directory.
func NewAccessGuard(directory UserFinder) *AccessGuard {
	return &AccessGuard{
		directory: directory,
		logger:    defLogger{},
	}
}

func (g *AccessGuard) WithLogger(logger Logger) *AccessGuard {
	if logger != nil {
		g.logger = logger
	}
	return g
}

// Allowed reports whether the identity may invoke an operation guarded
// by requirement. The role comes from a fresh directory lookup, never
// from the identity itself; an identity whose account vanished is
// denied.
func (g *AccessGuard) Allowed(ctx context.Context, requirement *RoleRequirement, identity *Identity) bool {
	if requirement == nil {
		return true
	}

	if identity == nil {
		return false
	}

	user, err := g.directory.FindByID(ctx, identity.ID)
	if err != nil || user == nil {
		g.logger.Debug("AccessGuard could not resolve user id=%d", identity.ID)
		return false
	}

	return requirement.Permits(user.Role)
}
