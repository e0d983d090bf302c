// Package api exposes the published content as JSON under /api/v1. All
// routes require the backend API key in the X-Api-Key header.
package api

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
)

const (
	// Path is the base path of the JSON API.
	Path = "/api/v1"

	// KeyHeader carries the API key on every request.
	KeyHeader = "X-Api-Key"
)

// Service is the JSON API handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the JSON API handler.
var Handler = Service{}

// Init initializes the JSON API handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	api := app.Group(Path, s.RequireKey)
	api.Get("/posts", s.Posts)
	api.Get("/posts/:slug", s.Post)
	api.Get("/services", s.Services)
	api.Get("/sections", s.Sections)
	api.Get("/settings", s.Settings)
	api.Get("/testimonials", s.Testimonials)
	api.Get("/certifications", s.Certifications)
}

// RequireKey rejects requests without the configured API key.
func (s *Service) RequireKey(c *fiber.Ctx) error {
	key := c.Get(KeyHeader)

	if subtle.ConstantTimeCompare([]byte(key), []byte(s.cfg.Backend.APIKey)) != 1 {
		log.Debug().Str("path", c.Path()).Msg("api request with bad key")

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid api key",
		})
	}

	return c.Next()
}

// Posts lists the published blog posts.
func (s *Service) Posts(c *fiber.Ctx) error {
	posts := s.state.Posts.Items()

	published := make([]models.BlogPost, 0, len(posts))

	for i := range posts {
		if posts[i].Published() {
			published = append(published, posts[i])
		}
	}

	return c.JSON(published)
}

// Post returns one published blog post by slug.
func (s *Service) Post(c *fiber.Ctx) error {
	slug := c.Params("slug")

	posts := s.state.Posts.Items()

	for i := range posts {
		if posts[i].Slug == slug && posts[i].Published() {
			return c.JSON(posts[i])
		}
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": "not found",
	})
}

// Services lists the active services.
func (s *Service) Services(c *fiber.Ctx) error {
	services := s.state.Services.Items()

	active := make([]models.Service, 0, len(services))

	for i := range services {
		if services[i].IsActive {
			active = append(active, services[i])
		}
	}

	return c.JSON(active)
}

// Sections lists the active content sections.
func (s *Service) Sections(c *fiber.Ctx) error {
	sections := s.state.Sections.Items()

	active := make([]models.ContentSection, 0, len(sections))

	for i := range sections {
		if sections[i].IsActive {
			active = append(active, sections[i])
		}
	}

	return c.JSON(active)
}

// Settings lists the public site settings.
func (s *Service) Settings(c *fiber.Ctx) error {
	return c.JSON(handler.PublicSettings(s.state))
}

// Testimonials lists the active testimonials.
func (s *Service) Testimonials(c *fiber.Ctx) error {
	testimonials := s.state.Testimonials.Items()

	active := make([]models.Testimonial, 0, len(testimonials))

	for i := range testimonials {
		if testimonials[i].IsActive {
			active = append(active, testimonials[i])
		}
	}

	return c.JSON(active)
}

// Certifications lists every certification.
func (s *Service) Certifications(c *fiber.Ctx) error {
	return c.JSON(s.state.Certifications.Items())
}
