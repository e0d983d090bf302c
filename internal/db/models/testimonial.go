package models

import (
	"time"
)

// Testimonial represents a client quote shown on the public site.
type Testimonial struct {
	ID      uint64 `gorm:"primaryKey"`
	Author  string `gorm:"size:255;not null" validate:"required"`
	Role    string `gorm:"size:255"`
	QuoteEn string `gorm:"type:text" validate:"required"`
	QuoteAr string `gorm:"type:text"`
	// Rating is 1..5; zero means not rated.
	Rating   int  `validate:"omitempty,min=1,max=5"`
	IsActive bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Quote returns the testimonial quote for the given language.
func (t *Testimonial) Quote(lang string) string {
	if lang == "ar" && t.QuoteAr != "" {
		return t.QuoteAr
	}

	return t.QuoteEn
}
