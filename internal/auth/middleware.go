package auth

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/web/session"
)

// CurrentUser reads the logged-in user from the request's session cookie.
func CurrentUser(c *fiber.Ctx) (*session.Data, bool) {
	sessionID := c.Cookies(session.CookieName)
	if sessionID == "" {
		return nil, false
	}

	sessionData := new(session.Data)
	if err := sessionData.Read(sessionID); err != nil {
		return nil, false
	}

	if sessionData.User.ID == 0 {
		return nil, false
	}

	return sessionData, true
}

// RequirePermission creates Fiber middleware that requires a specific permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionData, ok := CurrentUser(c)
		if !ok {
			log.Debug().Str("path", c.Path()).Msg("unauthenticated dashboard request")

			return c.Status(fiber.StatusUnauthorized).SendString("Unauthorized")
		}

		if !RoleHasPermission(sessionData.User.Role, permission) {
			log.Warn().Uint64("user_id", sessionData.User.ID).Str("permission", permission).
				Msg("user lacks required permission")

			return c.Status(fiber.StatusForbidden).
				SendString("Forbidden: You don't have permission to access this resource")
		}

		return c.Next()
	}
}
