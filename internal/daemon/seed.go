package daemon

import (
	"github.com/rs/zerolog/log"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

// seed creates the default admin account when the user table is empty,
// so a fresh install has a way into the dashboard.
func seed(b *backend.Client) {
	var count int64

	b.DB.Model(&models.User{}).Count(&count)

	if count > 0 {
		return
	}

	result := b.DB.Create(
		&models.User{
			Username: "admin",
			Password: models.HashPassword("changeme"),
			Active:   true,
			Role:     models.RoleAdmin,
		},
	)

	if result.Error != nil {
		log.Error().Err(result.Error).Msg("failed to seed default admin user")
		return
	}

	log.Warn().Msg("seeded default admin user 'admin', change its password immediately")
}
