// Package media provides the media library pages of the dashboard:
// uploading, browsing and deleting stored objects.
package media

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/auth"
	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler"
	"github.com/alaaabdelzaher/web-sub000/internal/web/navigation"
)

const (
	// Path is the path to the media library page.
	Path = "/admin/media"

	// TemplateName is the name of the media library template.
	TemplateName = "admin/media"

	// FileField is the multipart form field carrying the upload.
	FileField = "file"

	// maxUploadSize caps a single upload at 32 MiB.
	maxUploadSize = 32 << 20
)

// Service is the media library handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the media library handler.
var Handler = Service{}

// Init initializes the media library handler.
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
		router.Post(handler.RootPath, s.Upload)
		router.Post("/:id/delete", s.Delete)
	})
}

// List renders the media library page.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Media Library", "media").
		AddBreadcrumb("Dashboard", "/dashboard", false).
		AddBreadcrumb("Media Library", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Files"] = s.state.Media.Items()
	data["Loading"] = s.state.Media.Loading()
	data["MirrorErr"] = s.state.Media.Err()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

// Upload stores an uploaded file and its metadata record.
func (s *Service) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile(FileField)
	if err != nil {
		return handler.RedirectWithErr(c, Path, "No file selected")
	}

	if fileHeader.Size > maxUploadSize {
		return handler.RedirectWithErr(c, Path, "File too large")
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Error().Err(err).Msg("failed to open uploaded file")

		return handler.RedirectWithErr(c, Path, "Failed to read upload")
	}
	defer file.Close()

	blob, err := io.ReadAll(file)
	if err != nil {
		log.Error().Err(err).Msg("failed to read uploaded file")

		return handler.RedirectWithErr(c, Path, "Failed to read upload")
	}

	folder := c.FormValue("folder")

	if _, err = s.state.Stores.Media.Upload(c.Context(), fileHeader.Filename, blob, folder); err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("media upload failed")

		return handler.RedirectWithErr(c, Path, "Upload failed: "+err.Error())
	}

	// The upload goes through the media store, not the mirror; reload it.
	s.state.Media.Refetch(c.Context())

	return handler.RedirectWithMsg(c, Path, "File uploaded")
}

// Delete removes a stored object and its record.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.ParamID(c)
	if err != nil {
		return fiber.ErrBadRequest
	}

	if err = s.state.Stores.Media.Delete(c.Context(), id); err != nil {
		log.Error().Err(err).Uint64("id", id).Msg("media deletion failed")

		return handler.RedirectWithErr(c, Path, "Failed to delete file: "+err.Error())
	}

	s.state.Media.Refetch(c.Context())

	return handler.RedirectWithMsg(c, Path, "File deleted")
}
