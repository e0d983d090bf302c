package models

import (
	"time"
)

// MediaFile represents the metadata record of an uploaded blob. The raw
// bytes live in the blob store under Path; URL is the public address the
// web layer serves them from.
type MediaFile struct {
	ID           uint64 `gorm:"primaryKey"`
	Filename     string `gorm:"size:255;not null" validate:"required"`
	OriginalName string `gorm:"size:255"`
	MimeType     string `gorm:"size:100"`
	Size         int64
	Path         string `gorm:"uniqueIndex;size:512;not null"`
	URL          string `gorm:"size:512"`
	Folder       string `gorm:"size:100;not null;default:'uploads'"`
	IsOptimized  bool

	CreatedAt time.Time
	UpdatedAt time.Time
}
