package handler

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// Transient banner messages are carried across redirects in query
// parameters; the base layout renders and auto-dismisses them. Failures
// never block further interaction.

// RedirectWithMsg redirects carrying a transient success message.
func RedirectWithMsg(c *fiber.Ctx, path, msg string) error {
	return c.Redirect(path + "?" + QueryMsg + "=" + url.QueryEscape(msg))
}

// RedirectWithErr redirects carrying a transient failure message.
func RedirectWithErr(c *fiber.Ctx, path, errMsg string) error {
	return c.Redirect(path + "?" + QueryErr + "=" + url.QueryEscape(errMsg))
}

// Flash reads the transient messages of the current request.
func Flash(c *fiber.Ctx) (msg, errMsg string) {
	return c.Query(QueryMsg), c.Query(QueryErr)
}
