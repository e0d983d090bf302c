// Package catalog provides the dashboard pages for the public marketing
// collections: services, certifications and testimonials.
package catalog

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
	// Path is the path to the catalog management page.
	Path = "/admin/catalog"

	// TemplateName is the name of the catalog management template.
	TemplateName = "admin/catalog"
)

// ServiceForm is the service editor payload.
type ServiceForm struct {
	NameEn        string `form:"nameEn"`
	NameAr        string `form:"nameAr"`
	DescriptionEn string `form:"descriptionEn"`
	DescriptionAr string `form:"descriptionAr"`
	Icon          string `form:"icon"`
	Slug          string `form:"slug"`
	SortOrder     int    `form:"sortOrder"`
	IsActive      bool   `form:"isActive"`
}

// CertificationForm is the certification editor payload.
type CertificationForm struct {
	TitleEn  string `form:"titleEn"`
	TitleAr  string `form:"titleAr"`
	Issuer   string `form:"issuer"`
	Year     int    `form:"year"`
	ImageURL string `form:"imageUrl"`
}

// TestimonialForm is the testimonial editor payload.
type TestimonialForm struct {
	Author   string `form:"author"`
	Role     string `form:"role"`
	QuoteEn  string `form:"quoteEn"`
	QuoteAr  string `form:"quoteAr"`
	Rating   int    `form:"rating"`
	IsActive bool   `form:"isActive"`
}

// Service is the catalog management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the catalog management handler.
var Handler = Service{}

// Init initializes the catalog management handler.
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

		router.Post("/services", s.CreateService)
		router.Post("/services/:id", s.UpdateService)
		router.Post("/services/:id/delete", s.DeleteService)

		router.Post("/certifications", s.CreateCertification)
		router.Post("/certifications/:id", s.UpdateCertification)
		router.Post("/certifications/:id/delete", s.DeleteCertification)

		router.Post("/testimonials", s.CreateTestimonial)
		router.Post("/testimonials/:id", s.UpdateTestimonial)
		router.Post("/testimonials/:id/delete", s.DeleteTestimonial)
	})
}

// List renders the catalog management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Catalog", "catalog").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Catalog", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["ServiceList"] = s.state.Services.Items()
	data["Certifications"] = s.state.Certifications.Items()
	data["Testimonials"] = s.state.Testimonials.Items()
	data["ServicesErr"] = s.state.Services.Err()
	data["CertificationsErr"] = s.state.Certifications.Err()
	data["TestimonialsErr"] = s.state.Testimonials.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// CreateService stores a new service.
func (s *Service) CreateService(c *fiber.Ctx) error {
	form := new(ServiceForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	service := &models.Service{
		NameEn:        form.NameEn,
		NameAr:        form.NameAr,
		DescriptionEn: form.DescriptionEn,
		DescriptionAr: form.DescriptionAr,
		Icon:          form.Icon,
		Slug:          form.Slug,
		SortOrder:     form.SortOrder,
		IsActive:      form.IsActive,
	}

	if err := s.state.Services.Create(c.Context(), service); err != nil {
		log.Error().Err(err).Msg("service creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create service: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Service created")
}

// UpdateService applies the submitted changes to a service.
func (s *Service) UpdateService(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	form := new(ServiceForm)

	if err = c.BodyParser(form); err != nil {
		return err
	}

	changes := map[string]any{
		"name_en":        form.NameEn,
		"name_ar":        form.NameAr,
		"description_en": form.DescriptionEn,
		"description_ar": form.DescriptionAr,
		"icon":           form.Icon,
		"slug":           form.Slug,
		"sort_order":     form.SortOrder,
		"is_active":      form.IsActive,
	}

	if err = s.state.Services.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("service update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update service: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Service updated")
}

// DeleteService removes a service.
func (s *Service) DeleteService(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Services.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("service deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete service: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Service deleted")
}

// CreateCertification stores a new certification.
func (s *Service) CreateCertification(c *fiber.Ctx) error {
	form := new(CertificationForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	certification := &models.Certification{
		TitleEn:  form.TitleEn,
		TitleAr:  form.TitleAr,
		Issuer:   form.Issuer,
		Year:     form.Year,
		ImageURL: form.ImageURL,
	}

	if err := s.state.Certifications.Create(c.Context(), certification); err != nil {
		log.Error().Err(err).Msg("certification creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create certification: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Certification created")
}

// UpdateCertification applies the submitted changes to a certification.
func (s *Service) UpdateCertification(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	form := new(CertificationForm)

	if err = c.BodyParser(form); err != nil {
		return err
	}

	changes := map[string]any{
		"title_en":  form.TitleEn,
		"title_ar":  form.TitleAr,
		"issuer":    form.Issuer,
		"year":      form.Year,
		"image_url": form.ImageURL,
	}

	if err = s.state.Certifications.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("certification update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update certification: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Certification updated")
}

// DeleteCertification removes a certification.
func (s *Service) DeleteCertification(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Certifications.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("certification deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete certification: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Certification deleted")
}

// CreateTestimonial stores a new testimonial.
func (s *Service) CreateTestimonial(c *fiber.Ctx) error {
	form := new(TestimonialForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	testimonial := &models.Testimonial{
		Author:   form.Author,
		Role:     form.Role,
		QuoteEn:  form.QuoteEn,
		QuoteAr:  form.QuoteAr,
		Rating:   form.Rating,
		IsActive: form.IsActive,
	}

	if err := s.state.Testimonials.Create(c.Context(), testimonial); err != nil {
		log.Error().Err(err).Msg("testimonial creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create testimonial: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Testimonial created")
}

// UpdateTestimonial applies the submitted changes to a testimonial.
func (s *Service) UpdateTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	form := new(TestimonialForm)

	if err = c.BodyParser(form); err != nil {
		return err
	}

	changes := map[string]any{
		"author":    form.Author,
		"role":      form.Role,
		"quote_en":  form.QuoteEn,
		"quote_ar":  form.QuoteAr,
		"rating":    form.Rating,
		"is_active": form.IsActive,
	}

	if err = s.state.Testimonials.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("testimonial update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update testimonial: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Testimonial updated")
}

// DeleteTestimonial removes a testimonial.
func (s *Service) DeleteTestimonial(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Testimonials.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("testimonial deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete testimonial: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Testimonial deleted")
}
