// Package chatbot provides the canned chat response management pages of
// the dashboard.
package chatbot

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/auth"
	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
	"github.com/alaaabdelzaher/web-sub000/internal/web/navigation"
)

const (
	// Path is the path to the chatbot management page.
	Path = "/admin/chatbot"

	// TemplateName is the name of the chatbot management template.
	TemplateName = "admin/chatbot"
)

// Form is the chatbot response editor payload.
type Form struct {
	TriggerKeywords string `form:"triggerKeywords"`
	ResponseText    string `form:"responseText"`
	Priority        int    `form:"priority"`
	IsActive        bool   `form:"isActive"`
}

// Service is the chatbot management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the chatbot management handler.
var Handler = Service{}

// Init initializes the chatbot management handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequirePermission(auth.PermContentManage))
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})
}

// List renders the chatbot management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Chatbot", "chatbot").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Chatbot", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Responses"] = s.state.Chatbot.Items()
	data["Loading"] = s.state.Chatbot.Loading()
	data["MirrorErr"] = s.state.Chatbot.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Create stores a new canned response.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	response := &models.ChatbotResponse{
		TriggerKeywords: form.TriggerKeywords,
		ResponseText:    form.ResponseText,
		Priority:        form.Priority,
		IsActive:        form.IsActive,
	}

	if err := s.state.Chatbot.Create(c.Context(), response); err != nil {
		log.Error().Err(err).Msg("chatbot response creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create response: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Response created")
}

// Update applies the submitted changes to a canned response.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	form := new(Form)

	if err = c.BodyParser(form); err != nil {
		return err
	}

	changes := map[string]any{
		"trigger_keywords": form.TriggerKeywords,
		"response_text":    form.ResponseText,
		"priority":         form.Priority,
		"is_active":        form.IsActive,
	}

	if err = s.state.Chatbot.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("chatbot response update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update response: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Response updated")
}

// Delete removes a canned response.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Chatbot.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("chatbot response deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete response: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Response deleted")
}
