// Package backend owns the clients of the shared data backend: the
// relational store, the blob store for uploaded media, and the optional
// change-event transport. The bundle is constructed once at startup and
// passed explicitly into everything that needs it; there is no global
// client instance.
package backend

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/storage"
	"github.com/gofiber/storage/mysql/v2"
	"github.com/gofiber/storage/postgres/v3"
	"github.com/gofiber/storage/sqlite3/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/alaaabdelzaher/web-sub000/internal/config"
	"github.com/alaaabdelzaher/web-sub000/internal/db/dsn"
	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

const (
	mediaTable    = "media_blobs"
	sessionsTable = "sessions"

	connectTimeout = 5 * time.Second
)

// Client bundles the backend connections used by the gateways.
type Client struct {
	// DB is the relational store holding all entity records.
	DB *gorm.DB
	// Files is the blob store holding raw media objects keyed by path.
	Files storage.Storage
	// Sessions is the blob store backing web sessions.
	Sessions storage.Storage
	// Events is the change-event transport; nil when realtime is disabled.
	Events *redis.Client
	// ChannelPrefix prefixes the pub/sub channel of each table.
	ChannelPrefix string
}

// Open connects the backend described by the configuration and migrates
// the schema. The configuration must already be validated; a missing
// backend URL or API key never reaches this point.
func Open(cfg *config.Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	db, err := gorm.Open(dsn.Dialector(cfg.Backend.URL), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect backend database")
	}

	if err = db.AutoMigrate(
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
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate backend database")
	}

	client := &Client{
		DB:            db,
		Files:         newStorage(cfg, mediaTable),
		Sessions:      newStorage(cfg, sessionsTable),
		ChannelPrefix: cfg.Realtime.ChannelPrefix,
	}

	if cfg.Realtime.Enabled {
		client.Events, err = openRedis(cfg.Realtime.RedisURL)
		if err != nil {
			return nil, err
		}
	}

	return client, nil
}

// Close releases every backend connection. Safe to call once after Open
// succeeded; pairs with Open on all shutdown paths.
func (c *Client) Close() {
	if c.Events != nil {
		_ = c.Events.Close()
	}

	if c.Files != nil {
		_ = c.Files.Close()
	}

	if c.Sessions != nil {
		_ = c.Sessions.Close()
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// newStorage creates a blob store table on the same backend as the
// relational store unless a dedicated media DSN is configured.
func newStorage(cfg *config.Config, table string) storage.Storage {
	target := cfg.Backend.MediaDSN
	if target == "" {
		target = cfg.Backend.URL
	}

	switch {
	case dsn.IsSQLite(target):
		return sqlite3.New(sqlite3.Config{
			Database: blobDatabasePath(target),
			Table:    table,
		})
	case strings.HasPrefix(target, "mysql://"):
		return mysql.New(mysql.Config{
			ConnectionURI: strings.TrimPrefix(target, "mysql://"),
			Table:         table,
		})
	default:
		return postgres.New(postgres.Config{
			ConnectionURI: target,
			Table:         table,
		})
	}
}

// blobDatabasePath keeps blob tables in a sibling SQLite file so the two
// drivers never contend for the same database file.
func blobDatabasePath(path string) string {
	return strings.TrimSuffix(path, ".db") + ".blobs.db"
}

func openRedis(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse realtime redis URL")
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect realtime redis")
	}

	return client, nil
}
