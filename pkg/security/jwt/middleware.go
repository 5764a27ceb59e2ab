package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dkuznetsov13/enginehealth/pkg/auth"
)

// LocalsUser is the fiber.Ctx locals key the middleware stores the
// authenticated auth.User under.
const LocalsUser = "authUser"

// NewAuthMiddleware returns a Fiber middleware that extracts the bearer
// token, re-derives the caller's identity through auth.Authenticate and
// stores the resulting user in c.Locals(LocalsUser). Every failure maps
// to the same outward 401 body, with a WWW-Authenticate challenge hint.
func NewAuthMiddleware(uc auth.UseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenStr := extractBearer(c.Get("Authorization"))
		if tokenStr == "" {
			return unauthorized(c)
		}
		user, err := uc.Authenticate(c.Context(), tokenStr)
		if err != nil {
			return unauthorized(c)
		}
		c.Locals(LocalsUser, user)
		return c.Next()
	}
}

// extractBearer supports both "Bearer <token>" and "<token>" (no prefix).
func extractBearer(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 {
		if strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
		// Fallback: treat entire header as token (for non-standard clients)
		return header
	}
	return header
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": "could not validate credentials"})
}

// UserFromCtx returns the authenticated user placed by the middleware.
func UserFromCtx(c *fiber.Ctx) (auth.User, bool) {
	user, ok := c.Locals(LocalsUser).(auth.User)
	return user, ok
}
