package web

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
)

// languageCookieMaxAge keeps the preference for a year.
const languageCookieMaxAge = 365 * 24 * time.Hour

// LocaleMiddleware resolves the visitor's language from the preference
// cookie and stores it in locals for handlers and templates. Unknown or
// missing values fall back to the default language.
func LocaleMiddleware(c *fiber.Ctx) error {
	lang := i18n.Parse(c.Cookies(i18n.CookieKey))

	c.Locals(handler.LocalsLang, lang)

	return c.Next()
}

// SwitchLanguage persists the chosen language and sends the visitor back
// to where they came from.
func SwitchLanguage(c *fiber.Ctx) error {
	lang := i18n.Parse(c.Params("lang"))

	c.Cookie(&fiber.Cookie{
		Name:     i18n.CookieKey,
		Value:    string(lang),
		MaxAge:   int(languageCookieMaxAge.Seconds()),
		HTTPOnly: false,
		SameSite: "Lax",
	})

	target := c.Get(fiber.HeaderReferer)
	if target == "" {
		target = handler.RootPath
	}

	return c.Redirect(target)
}
