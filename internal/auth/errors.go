package auth

import (
	"errors"
)

var (
	// ErrUserNotFound is returned when no account matches the username.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAccountDisabled is returned for inactive accounts.
	ErrUserAccountDisabled = errors.New("user account is disabled")

	// ErrInvalidPassword is returned when the password does not match.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrInvalidOldPassword is returned when a password change presents a
	// wrong current password.
	ErrInvalidOldPassword = errors.New("invalid old password")
)
