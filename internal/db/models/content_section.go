package models

import (
	"time"
)

// ContentSection represents one keyed block of page content (hero text,
// intro paragraphs, footers). Sections are written with upsert-by-key
// semantics: one row per SectionKey, insert-or-replace, never duplicated.
type ContentSection struct {
	ID          uint64      `gorm:"primaryKey"`
	SectionKey  string      `gorm:"uniqueIndex;size:100;not null" validate:"required"`
	ContentType ContentType `gorm:"type:varchar(20);not null;default:'text'" validate:"omitempty,oneof=text html markdown"`
	Content     string      `gorm:"type:text"`
	SortOrder   int
	IsActive    bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
