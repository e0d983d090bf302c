package backend

import (
	"errors"
)

var (
	// ErrNilConfig is returned when Open is called without a configuration.
	ErrNilConfig = errors.New("backend config is nil")
)
