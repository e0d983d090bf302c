package web

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/login"
	"github.com/alaaabdelzaher/web-sub000/internal/web/session"
)

// AuthMiddleware guards the dashboard area. The public site, the JSON
// API and the media routes stay reachable without a session; only
// /dashboard and /admin require one.
func AuthMiddleware(c *fiber.Ctx) error {
	var (
		isLoginPage   = IsLoginPage(c)
		isGuardedPage = IsGuardedPage(c)
		sessDataValid bool
	)

	if !isLoginPage && !isGuardedPage {
		return c.Next()
	}

	// get session cookie
	loginCookie := c.Cookies(session.CookieName)

	// if no session cookie, redirect to login page
	if loginCookie == "" && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// check session validity
	sessData := new(session.Data)
	if err := sessData.Read(loginCookie); err != nil && !isLoginPage {
		return c.Redirect(login.Path)
	}

	// valid data in session
	if sessData.User.ID > 0 {
		sessDataValid = true
	}

	if sessDataValid && isLoginPage {
		return c.Redirect("/dashboard")
	}

	if !sessDataValid && isGuardedPage {
		return c.Redirect(login.Path)
	}

	return c.Next()
}

// IsLoginPage checks if the current request is for the login page.
func IsLoginPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, login.Path)
}

// IsGuardedPage checks if the current request targets the dashboard area.
func IsGuardedPage(c *fiber.Ctx) bool {
	originalURL := strings.ToLower(c.OriginalURL())
	return strings.HasPrefix(originalURL, "/dashboard") || strings.HasPrefix(originalURL, "/admin")
}
