package models

import (
	"time"
)

// Certification represents a professional certification or accreditation
// displayed on the public site.
type Certification struct {
	ID       uint64 `gorm:"primaryKey"`
	TitleEn  string `gorm:"size:255;not null" validate:"required"`
	TitleAr  string `gorm:"size:255"`
	Issuer   string `gorm:"size:255"`
	Year     int
	ImageURL string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Title returns the certification title for the given language.
func (c *Certification) Title(lang string) string {
	if lang == "ar" && c.TitleAr != "" {
		return c.TitleAr
	}

	return c.TitleEn
}
