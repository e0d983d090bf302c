// Package messages provides the contact message inbox of the dashboard.
package messages

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
	// Path is the path to the message inbox page.
	Path = "/admin/messages"

	// TemplateName is the name of the message inbox template.
	TemplateName = "admin/messages"
)

// validStatuses are the accepted triage states of a message.
var validStatuses = map[models.MessageStatus]bool{ //nolint:gochecknoglobals
	models.MessageNew:      true,
	models.MessageRead:     true,
	models.MessageReplied:  true,
	models.MessageArchived: true,
}

// Service is the message inbox handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the message inbox handler.
var Handler = Service{}

// Init initializes the message inbox handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequirePermission(auth.PermMessagesManage))
		router.Get(handler.RootPath, s.List)
		router.Post("/:id/status", s.SetStatus)
		router.Post("/:id/delete", s.Delete)
	})
}

// List renders the message inbox.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Messages", "messages").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Messages", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Messages"] = s.state.Messages.Items()
	data["Loading"] = s.state.Messages.Loading()
	data["MirrorErr"] = s.state.Messages.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// SetStatus moves a message to another triage state.
func (s *Service) SetStatus(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	status := models.MessageStatus(c.FormValue("status"))
	if !validStatuses[status] {
		return fiber.ErrBadRequest
	}

	if err = s.state.Messages.Update(c.Context(), id, map[string]any{
		"status": status,
	}); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("message status update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update message: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Message updated")
}

// Delete removes a message.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Messages.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("message deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete message: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Message deleted")
}
