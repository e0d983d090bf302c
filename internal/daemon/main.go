// Package daemon wires the pieces together: configuration validation,
// logging, the backend connection, the mirrored CMS state, the change
// notifier and the web service.
package daemon

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/auth"
	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/cms"
	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/logger"
	"github.com/alaaabdelzaher/web-sub000/internal/web"
	"github.com/alaaabdelzaher/web-sub000/internal/web/session"
)

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	backend    *backend.Client
	state      *cms.State
	webService *web.Service
	cancel     context.CancelFunc
}

// New creates a new Daemon instance with the provided configuration.
// A broken configuration or an unreachable backend is fatal here; the
// process must not come up half-connected.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if err := config.Validate(*cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, errors.Wrap(err, "failed to initialize logging")
	}

	b, err := backend.Open(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open backend")
	}

	seed(b)

	session.Init(b.Sessions)

	ctx, cancel := context.WithCancel(context.Background())

	state := cms.New(ctx, b, cfg.Webserver.URL)

	if err = state.StartNotifier(ctx); err != nil {
		cancel()
		state.Close()
		b.Close()

		return nil, errors.Wrap(err, "failed to start change notifier")
	}

	provider := auth.NewLocalProvider(b.DB)

	return &Daemon{
		cfg:        cfg,
		backend:    b,
		state:      state,
		webService: web.New(cfg, state, provider),
		cancel:     cancel,
	}, nil
}

// Start runs the web service until a termination signal arrives, then
// tears everything down in reverse order of construction.
func (d *Daemon) Start() error {
	addr := fmt.Sprintf("%s:%d", d.cfg.Webserver.Domain, d.cfg.Webserver.Port)

	go d.webService.WaitShutdown()

	err := d.webService.Start(addr)

	d.cancel()
	d.state.Close()
	d.backend.Close()

	log.Info().Msg("daemon stopped")

	return err
}
