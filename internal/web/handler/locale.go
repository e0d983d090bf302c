package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
)

// LocalsLang is the request-locals key the locale middleware fills in.
const LocalsLang = "lang"

// Lang resolves the language of the current request. The locale
// middleware stores the parsed value in locals; the cookie is the
// fallback for requests that bypass it.
func Lang(c *fiber.Ctx) i18n.Lang {
	if v, ok := c.Locals(LocalsLang).(i18n.Lang); ok {
		return v
	}
	return i18n.Parse(c.Cookies(i18n.CookieKey))
}
