package gateway

import (
	"github.com/go-playground/validator/v10"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/slug"
)

// Stores bundles the typed store of every entity table.
type Stores struct {
	Posts          *Store[models.BlogPost]
	Pages          *Store[models.Page]
	Media          *MediaStore
	Sections       *Store[models.ContentSection]
	Settings       *Store[models.SiteSetting]
	Chatbot        *Store[models.ChatbotResponse]
	Messages       *Store[models.ContactMessage]
	Services       *Store[models.Service]
	Certifications *Store[models.Certification]
	Testimonials   *Store[models.Testimonial]
	Navigation     *Store[models.NavigationItem]
	Users          *Store[models.User]
}

// NewStores wires every entity store against the backend. Slug-bearing
// entities derive a slug from their title when none is supplied; HTML
// content is sanitized before it is written.
func NewStores(b *backend.Client, baseURL string) *Stores {
	validate := validator.New()

	mediaRecords := NewStore(b, "media_files", validate,
		func(m *models.MediaFile) uint64 { return m.ID },
		func(m *models.MediaFile, id uint64) { m.ID = id },
	)

	return &Stores{
		Posts: NewStore(b, "blog_posts", validate,
			func(p *models.BlogPost) uint64 { return p.ID },
			func(p *models.BlogPost, id uint64) { p.ID = id },
			WithPrepare(func(p *models.BlogPost) {
				if p.Slug == "" {
					p.Slug = slug.Make(p.Title)
				}
				if p.Status == "" {
					p.Status = models.StatusDraft
				}
			}),
		),
		Pages: NewStore(b, "pages", validate,
			func(p *models.Page) uint64 { return p.ID },
			func(p *models.Page, id uint64) { p.ID = id },
			WithPrepare(func(p *models.Page) {
				if p.Slug == "" {
					p.Slug = slug.Make(p.Name)
				}
				if p.ContentType == models.ContentHTML {
					p.Content = SanitizeHTML(p.Content)
				}
			}),
			WithPrepareChanges(func(p *models.Page, changes map[string]any) {
				sanitizeContentChange(p.ContentType, changes)
			}),
		),
		Media: NewMediaStore(b, mediaRecords, baseURL),
		Sections: NewStore(b, "content_sections", validate,
			func(s *models.ContentSection) uint64 { return s.ID },
			func(s *models.ContentSection, id uint64) { s.ID = id },
			WithPrepare(func(s *models.ContentSection) {
				if s.ContentType == models.ContentHTML {
					s.Content = SanitizeHTML(s.Content)
				}
			}),
			WithPrepareChanges(func(s *models.ContentSection, changes map[string]any) {
				sanitizeContentChange(s.ContentType, changes)
			}),
		),
		Settings: NewStore(b, "site_settings", validate,
			func(s *models.SiteSetting) uint64 { return s.ID },
			func(s *models.SiteSetting, id uint64) { s.ID = id },
		),
		Chatbot: NewStore(b, "chatbot_responses", validate,
			func(r *models.ChatbotResponse) uint64 { return r.ID },
			func(r *models.ChatbotResponse, id uint64) { r.ID = id },
		),
		Messages: NewStore(b, "contact_messages", validate,
			func(m *models.ContactMessage) uint64 { return m.ID },
			func(m *models.ContactMessage, id uint64) { m.ID = id },
			WithPrepare(func(m *models.ContactMessage) {
				if m.Status == "" {
					m.Status = models.MessageNew
				}
			}),
		),
		Services: NewStore(b, "services", validate,
			func(s *models.Service) uint64 { return s.ID },
			func(s *models.Service, id uint64) { s.ID = id },
			WithPrepare(func(s *models.Service) {
				if s.Slug == "" {
					s.Slug = slug.Make(s.NameEn)
				}
			}),
		),
		Certifications: NewStore(b, "certifications", validate,
			func(c *models.Certification) uint64 { return c.ID },
			func(c *models.Certification, id uint64) { c.ID = id },
		),
		Testimonials: NewStore(b, "testimonials", validate,
			func(t *models.Testimonial) uint64 { return t.ID },
			func(t *models.Testimonial, id uint64) { t.ID = id },
		),
		Navigation: NewStore(b, "navigation_items", validate,
			func(n *models.NavigationItem) uint64 { return n.ID },
			func(n *models.NavigationItem, id uint64) { n.ID = id },
		),
		Users: NewStore(b, "users", validate,
			func(u *models.User) uint64 { return u.ID },
			func(u *models.User, id uint64) { u.ID = id },
		),
	}
}

// sanitizeContentChange sanitizes a content change when it is HTML. The
// change set's content_type statement wins; without one the stored row's
// type decides, so markdown and text updates pass through untouched.
func sanitizeContentChange(storedType models.ContentType, changes map[string]any) {
	content, ok := changes["content"].(string)
	if !ok {
		return
	}

	contentType := storedType
	if stated, ok := changes["content_type"].(string); ok && stated != "" {
		contentType = models.ContentType(stated)
	}

	if contentType == models.ContentHTML {
		changes["content"] = SanitizeHTML(content)
	}
}
