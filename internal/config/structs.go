package config

import (
	"time"

	"github.com/alaaabdelzaher/web-sub000/internal/logger"
)

// Session settings.
type Session struct {
	ExpiryTime time.Duration
}

// Backend holds the connection settings for the data backend.
// URL selects the relational store by scheme (postgres://, mysql://, or a
// SQLite file path) and APIKey guards the public JSON content API.
// Both values are required; startup fails without them.
type Backend struct {
	URL    string `toml:"url"`
	APIKey string `toml:"apiKey"`

	// MediaDSN is the connection string of the blob store holding uploaded
	// media objects. Empty means "derive from URL".
	MediaDSN string `toml:"mediaDSN"`
}

// Realtime holds the change-notification settings. When disabled, mirrored
// collections are refreshed only by their own mutations and manual reloads.
type Realtime struct {
	Enabled       bool   `toml:"enabled"`
	RedisURL      string `toml:"redisURL"`
	ChannelPrefix string `toml:"channelPrefix"`
}

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	Title     string
	Backend   Backend
	Realtime  Realtime
	Log       logger.Log
	Webserver Webserver
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string  // domain name for the webserver
	Port         int     // listening port for the webserver
	ShutDownTime int     // wait time for shutdown
	URL          string  // base url for the webserver, used to build public media URLs
	Session      Session // session settings
}
