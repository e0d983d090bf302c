// Package site serves the public bilingual pages: home, services, about,
// blog, stored pages, the contact form, the chat widget and uploaded
// media.
package site

import (
	"html/template"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/gateway"
	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
)

// Template names of the public pages.
const (
	TemplateHome     = "site/home"
	TemplateServices = "site/services"
	TemplateAbout    = "site/about"
	TemplateBlog     = "site/blog"
	TemplatePost     = "site/post"
	TemplatePage     = "site/page"
	TemplateContact  = "site/contact"
)

// ContactForm is the public contact form payload.
type ContactForm struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

// ChatRequest is the chat widget payload.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the chat widget reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// Service is the public site handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the public site handler.
var Handler = Service{}

// Init initializes the public site handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	app.Get(handler.RootPath, s.Home)
	app.Get("/services", s.Services)
	app.Get("/about", s.About)
	app.Get("/blog", s.Blog)
	app.Get("/blog/:slug", s.Post)
	app.Get("/p/:slug", s.Page)
	app.Get("/contact", s.Contact)
	app.Post("/contact", s.SubmitContact)
	app.Post("/chat", s.Chat)
	app.Get(gateway.MediaRoute+"*", s.Media)
}

// Home renders the landing page.
func (s *Service) Home(c *fiber.Ctx) error {
	data := handler.ViewData(c, s.cfg, s.state)
	data["Sections"] = s.sections()
	data["ServiceList"] = s.activeServices()
	data["Testimonials"] = s.activeTestimonials()
	data["Certifications"] = s.state.Certifications.Items()

	return c.Render(TemplateHome, data, handler.BaseLayout)
}

// Services renders the full service catalog.
func (s *Service) Services(c *fiber.Ctx) error {
	data := handler.ViewData(c, s.cfg, s.state)
	data["Sections"] = s.sections()
	data["ServiceList"] = s.activeServices()

	return c.Render(TemplateServices, data, handler.BaseLayout)
}

// About renders the about page from stored sections.
func (s *Service) About(c *fiber.Ctx) error {
	data := handler.ViewData(c, s.cfg, s.state)
	data["Sections"] = s.sections()
	data["Certifications"] = s.state.Certifications.Items()
	data["Testimonials"] = s.activeTestimonials()

	return c.Render(TemplateAbout, data, handler.BaseLayout)
}

// Blog renders the published article list.
func (s *Service) Blog(c *fiber.Ctx) error {
	posts := s.state.Posts.Items()

	published := make([]models.BlogPost, 0, len(posts))

	for i := range posts {
		if posts[i].Published() {
			published = append(published, posts[i])
		}
	}

	data := handler.ViewData(c, s.cfg, s.state)
	data["Posts"] = published

	return c.Render(TemplateBlog, data, handler.BaseLayout)
}

// Post renders one published article and counts the view.
func (s *Service) Post(c *fiber.Ctx) error {
	slug := c.Params("slug")

	post, ok := s.findPost(slug)
	if !ok {
		return fiber.ErrNotFound
	}

	// The view counter is best effort; a failed bump never blocks the page.
	if err := s.state.Posts.Update(c.Context(), post.ID, map[string]any{
		"views": post.Views + 1,
	}); err != nil {
		log.Warn().Err(err).Str("slug", slug).Msg("failed to count post view")
	}

	data := handler.ViewData(c, s.cfg, s.state)
	data["Post"] = post
	data["Body"] = handler.RenderContent(models.ContentMarkdown, post.Content)

	return c.Render(TemplatePost, data, handler.BaseLayout)
}

// Page renders one published stored page by slug.
func (s *Service) Page(c *fiber.Ctx) error {
	slug := c.Params("slug")

	pages := s.state.Pages.Items()

	for i := range pages {
		if pages[i].Slug == slug && pages[i].Published() {
			data := handler.ViewData(c, s.cfg, s.state)
			data["Page"] = &pages[i]
			data["Body"] = handler.RenderContent(pages[i].ContentType, pages[i].Content)

			return c.Render(TemplatePage, data, handler.BaseLayout)
		}
	}

	return fiber.ErrNotFound
}

// Contact renders the contact form.
func (s *Service) Contact(c *fiber.Ctx) error {
	data := handler.ViewData(c, s.cfg, s.state)
	data["Sections"] = s.sections()

	return c.Render(TemplateContact, data, handler.BaseLayout)
}

// SubmitContact stores a contact form submission.
func (s *Service) SubmitContact(c *fiber.Ctx) error {
	form := new(ContactForm)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	message := &models.ContactMessage{
		Name:    strings.TrimSpace(form.Name),
		Email:   strings.TrimSpace(form.Email),
		Subject: strings.TrimSpace(form.Subject),
		Message: strings.TrimSpace(form.Message),
	}

	lang := handler.Lang(c)

	if err := s.state.Messages.Create(c.Context(), message); err != nil {
		log.Error().Err(err).Msg("contact message submission failed")

		return handler.RedirectWithErr(c, "/contact", i18n.T(lang, "contact.failed"))
	}

	return handler.RedirectWithMsg(c, "/contact", i18n.T(lang, "contact.sent"))
}

// Chat answers a chat widget message from the canned response table.
// Among the active responses whose trigger keywords occur in the message
// the highest priority wins; without a match the localized fallback text
// is returned.
func (s *Service) Chat(c *fiber.Ctx) error {
	req := new(ChatRequest)

	if err := c.BodyParser(req); err != nil {
		return fiber.ErrBadRequest
	}

	lang := handler.Lang(c)

	// Mirror items are ordered by priority descending; first match wins.
	responses := s.state.Chatbot.Items()

	for i := range responses {
		if responses[i].IsActive && responses[i].Matches(req.Message) {
			return c.JSON(ChatResponse{Response: responses[i].ResponseText})
		}
	}

	return c.JSON(ChatResponse{Response: i18n.T(lang, "chat.fallback")})
}

// Media streams an uploaded object from the blob store.
func (s *Service) Media(c *fiber.Ctx) error {
	objectPath := c.Params("*")

	blob, err := s.state.Stores.Media.Open(objectPath)
	if err != nil {
		log.Debug().Err(err).Str("path", objectPath).Msg("media object not found")

		return fiber.ErrNotFound
	}

	if record, ok := s.state.Stores.Media.Records().GetBy(c.Context(), "path", objectPath); ok {
		c.Set(fiber.HeaderContentType, record.MimeType)
	}

	return c.Send(blob)
}

func (s *Service) findPost(slug string) (*models.BlogPost, bool) {
	posts := s.state.Posts.Items()

	for i := range posts {
		if posts[i].Slug == slug && posts[i].Published() {
			return &posts[i], true
		}
	}

	return nil, false
}

// sections maps the active content sections by key, rendered per their
// content type.
func (s *Service) sections() map[string]template.HTML {
	items := s.state.Sections.Items()

	rendered := make(map[string]template.HTML, len(items))

	for i := range items {
		if items[i].IsActive {
			rendered[items[i].SectionKey] = handler.RenderContent(items[i].ContentType, items[i].Content)
		}
	}

	return rendered
}

func (s *Service) activeServices() []models.Service {
	items := s.state.Services.Items()

	active := make([]models.Service, 0, len(items))

	for i := range items {
		if items[i].IsActive {
			active = append(active, items[i])
		}
	}

	return active
}

func (s *Service) activeTestimonials() []models.Testimonial {
	items := s.state.Testimonials.Items()

	active := make([]models.Testimonial, 0, len(items))

	for i := range items {
		if items[i].IsActive {
			active = append(active, items[i])
		}
	}

	return active
}
