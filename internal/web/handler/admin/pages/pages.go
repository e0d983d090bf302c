// Package pages provides the stored page management pages of the
// dashboard.
package pages

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
	// Path is the path to the page management page.
	Path = "/admin/pages"

	// TemplateName is the name of the page management template.
	TemplateName = "admin/pages"
)

// Form is the page editor payload.
type Form struct {
	Name        string `form:"name"`
	Slug        string `form:"slug"`
	Title       string `form:"title"`
	Content     string `form:"content"`
	ContentType string `form:"contentType"`
	Template    string `form:"template"`
	Status      string `form:"status"`
}

// Service is the page management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the page management handler.
var Handler = Service{}

// Init initializes the page management handler.
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

// List renders the page management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Pages", "pages").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Pages", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Pages"] = s.state.Pages.Items()
	data["Loading"] = s.state.Pages.Loading()
	data["MirrorErr"] = s.state.Pages.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Create stores a new page.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	page := &models.Page{
		Name:        form.Name,
		Slug:        form.Slug,
		Title:       form.Title,
		Content:     form.Content,
		ContentType: models.ContentType(form.ContentType),
		Template:    form.Template,
		Status:      models.PublishStatus(form.Status),
	}

	if err := s.state.Pages.Create(c.Context(), page); err != nil {
		log.Error().Err(err).Msg("page creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create page: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Page created")
}

// Update applies the submitted changes to a page.
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
		"name":         form.Name,
		"slug":         form.Slug,
		"title":        form.Title,
		"content":      form.Content,
		"content_type": form.ContentType,
		"template":     form.Template,
		"status":       form.Status,
	}

	if err = s.state.Pages.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("page update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update page: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Page updated")
}

// Delete removes a page.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Pages.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("page deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete page: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Page deleted")
}
