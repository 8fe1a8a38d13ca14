package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IdentityLocalsKey is the fiber locals slot the token middleware
// stores the resolved identity under.
const IdentityLocalsKey = "auth_identity"

const authScheme = "Bearer"

// Protected returns a middleware enforcing a valid bearer token. The
// pipeline is extraction, signature and expiry validation, then
// subject resolution against the directory; any failure short
// circuits with an unauthorized error before the handler runs. A
// token whose account no longer exists is rejected the same way.
func Protected(tokens TokenService, directory UserFinder) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw, err := ExtractBearerToken(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}

		claims, err := tokens.Validate(raw)
		if err != nil {
			return err
		}

		user, err := directory.FindByID(c.UserContext(), claims.UserID())
		if err != nil || user == nil {
			return ErrTokenMalformed
		}

		identity := &Identity{ID: user.ID, Username: user.Username}
		c.Locals(IdentityLocalsKey, identity)
		c.SetUserContext(WithIdentity(c.UserContext(), identity))

		return c.Next()
	}
}

// RequireRoles returns a middleware that consults the guard with the
// route's statically declared requirement. It runs after Protected;
// the 401/403 distinction stays observable because token failures
// never reach this stage.
func RequireRoles(guard *AccessGuard, requirement *RoleRequirement) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity := IdentityFromLocals(c)
		if !guard.Allowed(c.UserContext(), requirement, identity) {
			return ErrForbidden
		}
		return c.Next()
	}
}

// IdentityFromLocals retrieves the identity stored by Protected, or
// nil when the request never passed through it.
func IdentityFromLocals(c *fiber.Ctx) *Identity {
	identity, ok := c.Locals(IdentityLocalsKey).(*Identity)
	if !ok {
		return nil
	}
	return identity
}

// ExtractBearerToken pulls the raw token out of an Authorization
// header value.
func ExtractBearerToken(header string) (string, error) {
	if len(header) <= len(authScheme)+1 {
		return "", ErrTokenMissing
	}
	if !strings.EqualFold(header[:len(authScheme)], authScheme) {
		return "", ErrTokenMissing
	}
	if header[len(authScheme)] != ' ' {
		return "", ErrTokenMissing
	}

	token := strings.TrimSpace(header[len(authScheme):])
	if token == "" {
		return "", ErrTokenMissing
	}

	return token, nil
}
