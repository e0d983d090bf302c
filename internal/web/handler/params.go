package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamID parses the numeric :id route parameter.
func ParamID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}
