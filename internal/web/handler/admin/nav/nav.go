// Package nav provides the navigation menu management pages of the
// dashboard.
package nav

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
	// Path is the path to the navigation management page.
	Path = "/admin/navigation"

	// TemplateName is the name of the navigation management template.
	TemplateName = "admin/navigation"
)

// Form is the navigation item editor payload.
type Form struct {
	LabelEn   string `form:"labelEn"`
	LabelAr   string `form:"labelAr"`
	Href      string `form:"href"`
	SortOrder int    `form:"sortOrder"`
	IsActive  bool   `form:"isActive"`
}

// Service is the navigation management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the navigation management handler.
var Handler = Service{}

// Init initializes the navigation management handler.
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

// List renders the navigation management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Navigation", "navigation").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Navigation", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Items"] = s.state.Navigation.Items()
	data["Loading"] = s.state.Navigation.Loading()
	data["MirrorErr"] = s.state.Navigation.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Create stores a new navigation item.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	item := &models.NavigationItem{
		LabelEn:   form.LabelEn,
		LabelAr:   form.LabelAr,
		Href:      form.Href,
		SortOrder: form.SortOrder,
		IsActive:  form.IsActive,
	}

	if err := s.state.Navigation.Create(c.Context(), item); err != nil {
		log.Error().Err(err).Msg("navigation item creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create item: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Item created")
}

// Update applies the submitted changes to a navigation item.
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
		"label_en":   form.LabelEn,
		"label_ar":   form.LabelAr,
		"href":       form.Href,
		"sort_order": form.SortOrder,
		"is_active":  form.IsActive,
	}

	if err = s.state.Navigation.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("navigation item update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update item: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Item updated")
}

// Delete removes a navigation item.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Navigation.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("navigation item deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete item: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Item deleted")
}
