// Package dashboard renders the CMS overview page: per-table content
// counts and the latest incoming contact messages.
package dashboard

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
	// Path is the path to the dashboard page.
	Path = handler.RootPath + "dashboard"

	// TemplateName is the name of the dashboard template.
	TemplateName = "dashboard/overview"

	// recentMessageCount limits the inbox preview on the overview page.
	recentMessageCount = 5
)

// Counts holds the per-table totals shown on the overview cards.
type Counts struct {
	Posts          int
	PublishedPosts int
	Pages          int
	Media          int
	Services       int
	Messages       int
	NewMessages    int
	Users          int
}

// Service is the dashboard handler service.
type Service struct {
	handler.Service
	cfg   *config.Config
	state *cms.State
}

// Handler is the dashboard handler.
var Handler = Service{}

// Init initializes the dashboard handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, state *cms.State) {
	if app == nil || cfg == nil || state == nil {
		log.Fatal().Msg(handler.ErrNilACSFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.state = state

	app.Get(Path,
		auth.RequirePermission(auth.PermDashboardView),
		s.Get,
	)
}

// Get handles the dashboard page rendering.
func (s *Service) Get(c *fiber.Ctx) error {
	nav := navigation.NewContext("Dashboard", "dashboard").
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb("Dashboard", Path, true)

	data := handler.ViewData(c, s.cfg, s.state)
	data["Navigation"] = nav
	data["Counts"] = s.counts()
	data["RecentMessages"] = s.recentMessages()
	data["MirrorErr"] = s.firstMirrorErr()

	return c.Render(TemplateName, data, handler.BaseLayout)
}

func (s *Service) counts() Counts {
	posts := s.state.Posts.Items()
	messages := s.state.Messages.Items()

	counts := Counts{
		Posts:    len(posts),
		Pages:    s.state.Pages.Len(),
		Media:    s.state.Media.Len(),
		Services: s.state.Services.Len(),
		Messages: len(messages),
		Users:    s.state.Users.Len(),
	}

	for i := range posts {
		if posts[i].Published() {
			counts.PublishedPosts++
		}
	}

	for i := range messages {
		if messages[i].Status == models.MessageNew {
			counts.NewMessages++
		}
	}

	return counts
}

func (s *Service) recentMessages() []models.ContactMessage {
	messages := s.state.Messages.Items()

	if len(messages) > recentMessageCount {
		messages = messages[:recentMessageCount]
	}

	return messages
}

// firstMirrorErr surfaces the first failed mirror fetch on the overview
// page so a broken backend is visible without reading logs.
func (s *Service) firstMirrorErr() string {
	for _, errMsg := range []string{
		s.state.Posts.Err(),
		s.state.Pages.Err(),
		s.state.Media.Err(),
		s.state.Messages.Err(),
		s.state.Services.Err(),
	} {
		if errMsg != "" {
			return errMsg
		}
	}

	return ""
}
