package models

import (
	"time"
)

// SiteSetting represents one key-value site configuration entry. Written
// with upsert-by-key semantics: one row per SettingKey.
type SiteSetting struct {
	ID           uint64 `gorm:"primaryKey"`
	SettingKey   string `gorm:"uniqueIndex;size:100;not null" validate:"required"`
	SettingValue string `gorm:"type:text"`
	Category     string `gorm:"size:100"`
	// IsPublic marks settings exposed through the public JSON API.
	IsPublic bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
