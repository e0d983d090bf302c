package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// Role represents the dashboard role assigned to a user account.
type Role string

const (
	// RoleAdmin can manage everything including user accounts.
	RoleAdmin Role = "admin"
	// RoleEditor can manage content but not user accounts.
	RoleEditor Role = "editor"
)

// User represents a dashboard user account. Authentication is local only,
// with Argon2id hashed passwords.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey"`
	// Active indicates whether the user account is active and can log in.
	Active bool
	// Username is the unique username for login.
	Username string `gorm:"unique;size:100;not null" validate:"required"`
	// Email is the user's email address.
	Email string `gorm:"size:255" validate:"omitempty,email"`
	// Password is the Argon2id hashed password.
	Password string `gorm:"size:255"`
	// Role decides which dashboard permissions the user holds.
	Role Role `gorm:"type:varchar(20);not null;default:'editor'" validate:"omitempty,oneof=admin editor"`

	CreatedAt time.Time
	UpdatedAt time.Time
	// DeletedAt is the soft delete timestamp (nil if not deleted, managed by GORM).
	DeletedAt *time.Time
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored
// hashed password using constant-time comparison.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
