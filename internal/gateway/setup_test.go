package gateway

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/storage/sqlite3/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/alaaabdelzaher/web-sub000/internal/backend"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

// newTestBackend creates a backend client over in-memory stores.
func newTestBackend(t *testing.T) *backend.Client {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(
		&models.BlogPost{},
		&models.Page{},
		&models.MediaFile{},
		&models.ContentSection{},
		&models.SiteSetting{},
		&models.ChatbotResponse{},
		&models.ContactMessage{},
		&models.Service{},
		&models.Certification{},
		&models.Testimonial{},
		&models.NavigationItem{},
		&models.User{},
	)
	require.NoError(t, err, "failed to migrate test database")

	files := sqlite3.New(sqlite3.Config{
		Database: ":memory:",
		Table:    "media_blobs",
	})
	t.Cleanup(func() { _ = files.Close() })

	return &backend.Client{
		DB:    db,
		Files: files,
	}
}

// newBrokenBackend creates a backend whose database connection is
// already closed, so every query fails.
func newBrokenBackend(t *testing.T) *backend.Client {
	t.Helper()

	b := newTestBackend(t)

	sqlDB, err := b.DB.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	return b
}
