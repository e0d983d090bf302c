// Package posts provides the blog post management pages of the dashboard.
package posts

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
	// Path is the path to the blog post management page.
	Path = "/admin/posts"

	// TemplateName is the name of the post management template.
	TemplateName = "admin/posts"
)

// Form is the post editor payload.
type Form struct {
	Title    string `form:"title"`
	Slug     string `form:"slug"`
	Excerpt  string `form:"excerpt"`
	Content  string `form:"content"`
	Author   string `form:"author"`
	Tags     string `form:"tags"`
	ReadTime int    `form:"readTime"`
	Status   string `form:"status"`
}

// Service is the post management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the post management handler.
var Handler = Service{}

// Init initializes the post management handler.
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

// List renders the post management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Blog Posts", "posts").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Blog Posts", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Posts"] = s.state.Posts.Items()
	data["Loading"] = s.state.Posts.Loading()
	data["MirrorErr"] = s.state.Posts.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Create stores a new post.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	post := &models.BlogPost{
		Title:    form.Title,
		Slug:     form.Slug,
		Excerpt:  form.Excerpt,
		Content:  form.Content,
		Author:   form.Author,
		Tags:     form.Tags,
		ReadTime: form.ReadTime,
		Status:   models.PublishStatus(form.Status),
	}

	if err := s.state.Posts.Create(c.Context(), post); err != nil {
		log.Error().Err(err).Msg("post creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create post: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Post created")
}

// Update applies the submitted changes to a post.
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
		"title":     form.Title,
		"slug":      form.Slug,
		"excerpt":   form.Excerpt,
		"content":   form.Content,
		"author":    form.Author,
		"tags":      form.Tags,
		"read_time": form.ReadTime,
		"status":    form.Status,
	}

	if err = s.state.Posts.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("post update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update post: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Post updated")
}

// Delete removes a post.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Posts.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("post deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete post: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "Post deleted")
}
