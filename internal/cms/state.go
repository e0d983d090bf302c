// Package cms assembles the mirrored collections of every content table
// and keeps them registered with the change notifier. This is the state
// the web layer reads from and mutates through.
package cms

import (
	"context"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/gateway"
	"github.com/alaaabdelzaher/web-sub000/internal/mirror"
	"github.com/alaaabdelzaher/web-sub000/internal/notify"
)

// State owns the stores, the per-table mirrors and the change notifier.
type State struct {
	Stores *gateway.Stores

	Posts          *mirror.Collection[models.BlogPost]
	Pages          *mirror.Collection[models.Page]
	Media          *mirror.Collection[models.MediaFile]
	Sections       *mirror.Collection[models.ContentSection]
	Settings       *mirror.Collection[models.SiteSetting]
	Chatbot        *mirror.Collection[models.ChatbotResponse]
	Messages       *mirror.Collection[models.ContactMessage]
	Services       *mirror.Collection[models.Service]
	Certifications *mirror.Collection[models.Certification]
	Testimonials   *mirror.Collection[models.Testimonial]
	Navigation     *mirror.Collection[models.NavigationItem]
	Users          *mirror.Collection[models.User]

	notifier *notify.Notifier
}

// New builds the stores and mirrors and subscribes the notifier to the
// tables the dashboard watches. Each mirror runs its initial fetch here.
func New(ctx context.Context, b *backend.Client, baseURL string) *State {
	stores := gateway.NewStores(b, baseURL)

	s := &State{
		Stores: stores,

		Posts: mirror.NewCollection(ctx, stores.Posts,
			func(p *models.BlogPost) uint64 { return p.ID }, "created_at", false),
		Pages: mirror.NewCollection(ctx, stores.Pages,
			func(p *models.Page) uint64 { return p.ID }, "name", true),
		Media: mirror.NewCollection(ctx, stores.Media.Records(),
			func(m *models.MediaFile) uint64 { return m.ID }, "created_at", false),
		Sections: mirror.NewCollection(ctx, stores.Sections,
			func(c *models.ContentSection) uint64 { return c.ID }, "sort_order", true),
		Settings: mirror.NewCollection(ctx, stores.Settings,
			func(c *models.SiteSetting) uint64 { return c.ID }, "setting_key", true),
		Chatbot: mirror.NewCollection(ctx, stores.Chatbot,
			func(r *models.ChatbotResponse) uint64 { return r.ID }, "priority", false),
		Messages: mirror.NewCollection(ctx, stores.Messages,
			func(m *models.ContactMessage) uint64 { return m.ID }, "created_at", false),
		Services: mirror.NewCollection(ctx, stores.Services,
			func(s *models.Service) uint64 { return s.ID }, "sort_order", true),
		Certifications: mirror.NewCollection(ctx, stores.Certifications,
			func(c *models.Certification) uint64 { return c.ID }, "year", false),
		Testimonials: mirror.NewCollection(ctx, stores.Testimonials,
			func(t *models.Testimonial) uint64 { return t.ID }, "created_at", false),
		Navigation: mirror.NewCollection(ctx, stores.Navigation,
			func(n *models.NavigationItem) uint64 { return n.ID }, "sort_order", true),
		Users: mirror.NewCollection(ctx, stores.Users,
			func(u *models.User) uint64 { return u.ID }, "username", true),
	}

	s.notifier = notify.New(b.Events, b.ChannelPrefix)
	s.notifier.Watch(stores.Sections.Table(), s.Sections.Refetch)
	s.notifier.Watch(stores.Services.Table(), s.Services.Refetch)
	s.notifier.Watch(stores.Testimonials.Table(), s.Testimonials.Refetch)
	s.notifier.Watch(stores.Certifications.Table(), s.Certifications.Refetch)

	return s
}

// StartNotifier begins dispatching change events to the watched mirrors.
// No-op when realtime is disabled.
func (s *State) StartNotifier(ctx context.Context) error {
	return s.notifier.Start(ctx)
}

// Close stops the notifier and tears every mirror down. In-flight
// fetches landing after this point are dropped. Pairs with New on every
// shutdown path.
func (s *State) Close() {
	s.notifier.Stop()

	s.Posts.Close()
	s.Pages.Close()
	s.Media.Close()
	s.Sections.Close()
	s.Settings.Close()
	s.Chatbot.Close()
	s.Messages.Close()
	s.Services.Close()
	s.Certifications.Close()
	s.Testimonials.Close()
	s.Navigation.Close()
	s.Users.Close()
}
