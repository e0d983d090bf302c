package notify

import (
	"errors"
)

var (
	// ErrAlreadyStarted is returned when Start is called on a running notifier.
	ErrAlreadyStarted = errors.New("change notifier already started")
)
