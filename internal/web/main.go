// Package web assembles the fiber application: the public bilingual
// site, the CMS dashboard and the JSON content API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/auth"
	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/i18n"
	fiberlogger "github.com/alaaabdelzaher/web-sub000/internal/logger/adapter/fiber"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/catalog"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/chatbot"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/content"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/media"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/messages"
	adminnav "github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/nav"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/pages"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/posts"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/admin/users"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/api"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/dashboard"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/login"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/logout"
	"github.com/alaaabdelzaher/web-sub000/internal/web/handler/site"
)

// HealthzPath answers load balancer health checks.
const HealthzPath = "/healthz"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	state        *cms.State
	fastShutDown bool
	alive        atomic.Bool
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	s.alive.Store(true)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and stops the service.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the health check first
	// so the LB removes this pod from active targets.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, state *cms.State, provider *auth.LocalProvider) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if state == nil {
		panic("state cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	addTemplateFuncs(templateEngine)

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			Views:          templateEngine,
		},
	)

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// access logging
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:     cfg.Log,
		HealthzURI: HealthzPath,
	}))

	// language resolution, then dashboard gate
	app.Use(LocaleMiddleware)
	app.Use(AuthMiddleware)

	// init web service
	service := &Service{
		cfg:   cfg,
		App:   app,
		state: state,
	}

	app.Get(HealthzPath, service.Healthz)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/language/:lang", SwitchLanguage)

	// init handlers (they register their own routes with permission checks)
	login.Handler.Init(app, cfg, provider)
	logout.Handler.Init(app, cfg)
	dashboard.Handler.Init(app, cfg, state)
	posts.Handler.Init(app, cfg, state)
	pages.Handler.Init(app, cfg, state)
	media.Handler.Init(app, cfg, state)
	messages.Handler.Init(app, cfg, state)
	content.Handler.Init(app, cfg, state)
	chatbot.Handler.Init(app, cfg, state)
	catalog.Handler.Init(app, cfg, state)
	adminnav.Handler.Init(app, cfg, state)
	users.Handler.Init(app, cfg, state)
	api.Handler.Init(app, cfg, state)
	site.Handler.Init(app, cfg, state)

	return service
}

// Healthz reports liveness; during graceful shutdown it flips to 503.
func (s *Service) Healthz(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("ok")
}

// addTemplateFuncs registers the helpers the templates use.
func addTemplateFuncs(engine *html.Engine) {
	engine.AddFunc("t", func(lang, key string) string {
		return i18n.T(i18n.Lang(lang), key)
	})
	engine.AddFunc("formatDate", func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	})
	engine.AddFunc("add", func(a, b int) int {
		return a + b
	})
	engine.AddFunc("sub", func(a, b int) int {
		return a - b
	})
}
