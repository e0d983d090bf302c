package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrEmptyBackendURL error if config backend.url is empty.
	ErrEmptyBackendURL = errors.New("toml config backend.url can not be empty")

	// ErrEmptyBackendAPIKey error if config backend.apiKey is empty.
	ErrEmptyBackendAPIKey = errors.New("toml config backend.apiKey can not be empty")

	// ErrRealtimeRedisURLEmpty error if realtime is enabled without a redis URL.
	ErrRealtimeRedisURLEmpty = errors.New("toml config realtime.redisURL can not be empty when realtime is enabled")
)
