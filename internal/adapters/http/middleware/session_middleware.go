package middleware

import (
	"context"
	"errors"
	"log"
	"strings"

	"community-watch/internal/config"
	"community-watch/internal/core/authz"
	"community-watch/internal/core/domain"
	"community-watch/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// SessionResolver turns a session token into a principal
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (domain.Principal, error)
}

// SessionMiddleware resolves the caller's session into a principal.
// It never rejects a request: anonymous callers continue with the zero principal
// and the services decide what they may do.
func SessionMiddleware(resolver SessionResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := domain.Anonymous()

		token := SessionToken(c)
		if token != "" {
			resolved, err := resolver.ResolveSession(c.UserContext(), token)
			switch {
			case err == nil:
				principal = resolved
			case !errors.Is(err, domain.ErrUnauthenticated):
				log.Printf("⚠️ Session lookup failed: %v", err)
			}
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// SessionToken reads the session cookie, falling back to a Bearer header
func SessionToken(c *fiber.Ctx) string {
	if token := c.Cookies(config.SessionCookieName); token != "" {
		return token
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return ""
}

// PrincipalFrom returns the principal resolved for this request
func PrincipalFrom(c *fiber.Ctx) domain.Principal {
	if p, ok := c.Locals(principalKey).(domain.Principal); ok {
		return p
	}
	return domain.Anonymous()
}

// Require rejects requests whose principal does not satisfy policy
func Require(policy authz.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := authz.Check(PrincipalFrom(c), policy)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, domain.ErrUnauthenticated):
			return response.Unauthorized(c, response.CodeUnauthenticated, "Login required")
		default:
			return response.Forbidden(c, "Admin access required")
		}
	}
}
