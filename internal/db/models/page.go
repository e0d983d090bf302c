package models

import (
	"time"
)

// Page represents a standalone page rendered from stored content.
type Page struct {
	ID          uint64        `gorm:"primaryKey"`
	Name        string        `gorm:"size:255;not null" validate:"required"`
	Slug        string        `gorm:"uniqueIndex;size:255;not null" validate:"required"`
	Title       string        `gorm:"size:255"`
	Content     string        `gorm:"type:text"`
	ContentType ContentType   `gorm:"type:varchar(20);not null;default:'html'" validate:"omitempty,oneof=text html markdown"`
	Template    string        `gorm:"size:100"`
	Status      PublishStatus `gorm:"type:varchar(20);not null;default:'draft'" validate:"omitempty,oneof=draft published archived"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Published reports whether the page is visible on the public site.
func (p *Page) Published() bool {
	return p.Status == StatusPublished
}
