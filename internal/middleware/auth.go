package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"blog-backend/internal/auth"
	"blog-backend/internal/httperr"
)

const identityKey = "identity"

// Protect validates the bearer token and stores the caller's identity in the
// request locals. Requests without a valid token never reach the handler.
func Protect(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return httperr.Unauthorized("missing token")
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == "" || tokenString == header {
			return httperr.Unauthorized("invalid token format")
		}

		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return httperr.Unauthorized("invalid or expired token")
		}

		c.Locals(identityKey, auth.Identity{UserID: claims.UserID, Role: claims.Role})
		return c.Next()
	}
}

// RequireRole gates a route to callers whose role is in the allowed set.
// Must run after Protect.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		identity, ok := IdentityFrom(c)
		if !ok {
			return httperr.Unauthorized("missing token")
		}
		for _, role := range roles {
			if identity.Role == role {
				return c.Next()
			}
		}
		return httperr.Forbidden("access denied: insufficient role")
	}
}

// IdentityFrom returns the identity Protect stored for this request.
func IdentityFrom(c *fiber.Ctx) (auth.Identity, bool) {
	identity, ok := c.Locals(identityKey).(auth.Identity)
	return identity, ok
}
