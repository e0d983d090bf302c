// Package users provides the dashboard account management pages.
package users

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
	// Path is the path to the user management page.
	Path = "/admin/users"

	// TemplateName is the name of the user management template.
	TemplateName = "admin/users"
)

// Form is the user editor payload. Password is optional on update.
type Form struct {
	Username string `form:"username"`
	Email    string `form:"email"`
	Password string `form:"password"`
	Role     string `form:"role"`
	Active   bool   `form:"active"`
}

// Service is the user management handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the user management handler.
var Handler = Service{}

// Init initializes the user management handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	app.Route(Path, func(router fiber.Router) {
		router.Use(auth.RequirePermission(auth.PermUsersManage))
		router.Get(handler.RootPath, s.List)
		router.Post(handler.RootPath, s.Create)
		router.Post("/:id", s.Update)
		router.Post("/:id/delete", s.Delete)
	})
}

// List renders the user management page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Users", "users").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Users", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Users"] = s.state.Users.Items()
	data["Loading"] = s.state.Users.Loading()
	data["MirrorErr"] = s.state.Users.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Create stores a new user account.
func (s *Service) Create(c *fiber.Ctx) error {
	form := new(Form)

	if err := c.BodyParser(form); err != nil {
		return err
	}

	if form.Password == "" {
		return handler.RedirectWithErr(c, Path, "Password is required")
	}

	user := &models.User{
		Username: form.Username,
		Email:    form.Email,
		Password: models.HashPassword(form.Password),
		Role:     models.Role(form.Role),
		Active:   form.Active,
	}

	if err := s.state.Users.Create(c.Context(), user); err != nil {
		log.Error().Err(err).Str("username", form.Username).Msg("user creation failed")

		return handler.RedirectWithErr(c, Path, "Failed to create user: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "User created")
}

// Update applies the submitted changes to a user account. An empty
// password leaves the stored hash untouched.
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
		"username": form.Username,
		"email":    form.Email,
		"role":     form.Role,
		"active":   form.Active,
	}

	if form.Password != "" {
		changes["password"] = models.HashPassword(form.Password)
	}

	if err = s.state.Users.Update(c.Context(), id, changes); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("user update failed")

		return handler.RedirectWithErr(c, Path, "Failed to update user: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "User updated")
}

// Delete removes a user account. Deleting your own account is refused.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if sessionData, ok := auth.CurrentUser(c); ok && sessionData.User.ID == id {
		return handler.RedirectWithErr(c, Path, "You cannot delete your own account")
	}

	if err = s.state.Users.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("user deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete user: "+err.Error())
	}

	return handler.RedirectWithMsg(c, Path, "User deleted")
}
