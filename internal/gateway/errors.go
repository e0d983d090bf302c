package gateway

import (
	"errors"
)

var (
	// ErrNotFound is returned by write operations targeting a row that
	// does not exist. Read operations never return it; they fold the
	// not-found case into an absent result.
	ErrNotFound = errors.New("record not found")

	// ErrNilEntity is returned when a write operation receives a nil entity.
	ErrNilEntity = errors.New("entity is nil")
)
