// Package handler holds the shared contract of the web handler packages.
package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
)

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, cfg *config.Config, state *cms.State)
}
