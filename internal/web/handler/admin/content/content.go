// Package content provides the dashboard pages for keyed content
// sections and site settings. Both tables are written with
// upsert-by-key semantics: submitting an existing key replaces the row,
// a new key inserts one.
package content

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
	// Path is the path to the content management page.
	Path = "/admin/content"

	// TemplateName is the name of the content management template.
	TemplateName = "admin/content"
)

// SectionForm is the content section editor payload.
type SectionForm struct {
	SectionKey  string `form:"sectionKey"`
	ContentType string `form:"contentType"`
	Content     string `form:"content"`
	SortOrder   int    `form:"sortOrder"`
	IsActive    bool   `form:"isActive"`
}

// SettingForm is the site setting editor payload.
type SettingForm struct {
	SettingKey   string `form:"settingKey"`
	SettingValue string `form:"settingValue"`
	Category     string `form:"category"`
	IsPublic     bool   `form:"isPublic"`
}

// Service is the content management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the content management handler.
var Handler = Service{}

// Init initializes the content management handler.
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
		router.Post("/sections", s.UpsertSection)
		router.Post("/sections/:id/delete", s.DeleteSection)
		router.Post("/settings", s.UpsertSetting)
		router.Post("/settings/:id/delete", s.DeleteSetting)
	})
}

// List renders the content management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Site Content", "content").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Site Content", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Sections"] = s.state.Sections.Items()
	data["SettingList"] = s.state.Settings.Items()
	data["SectionsErr"] = s.state.Sections.Err()
	data["SettingsErr"] = s.state.Settings.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// UpsertSection inserts or replaces the section with the submitted key.
func (s *Service) UpsertSection(c *fiber.Ctx) error {
	form := new(SectionForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	section := &models.ContentSection{
		SectionKey:  form.SectionKey,
		ContentType: models.ContentType(form.ContentType),
		Content:     form.Content,
		SortOrder:   form.SortOrder,
		IsActive:    form.IsActive,
	}

	if err := s.state.Sections.Upsert(c.Context(), "section_key", form.SectionKey, section); err != nil {
		log.Error().Err(err).Str("key", form.SectionKey).Msg("section upsert failed")

		return handler.RedirectWithErr(c, Path, "Failed to save section: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Section saved")
}

// DeleteSection removes a section.
func (s *Service) DeleteSection(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Sections.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("section deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete section: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Section deleted")
}

// UpsertSetting inserts or replaces the setting with the submitted key.
func (s *Service) UpsertSetting(c *fiber.Ctx) error {
	form := new(SettingForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	setting := &models.SiteSetting{
		SettingKey:   form.SettingKey,
		SettingValue: form.SettingValue,
		Category:     form.Category,
		IsPublic:     form.IsPublic,
	}

	if err := s.state.Settings.Upsert(c.Context(), "setting_key", form.SettingKey, setting); err != nil {
		log.Error().Err(err).Str("key", form.SettingKey).Msg("setting upsert failed")

		return handler.RedirectWithErr(c, Path, "Failed to save setting: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Setting saved")
}

// DeleteSetting removes a setting.
func (s *Service) DeleteSetting(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Settings.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("setting deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete setting: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Setting deleted")
}
