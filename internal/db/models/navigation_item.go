package models

import (
	"time"
)

// NavigationItem represents one entry of the public site navigation bar.
type NavigationItem struct {
	ID        uint64 `gorm:"primaryKey"`
	LabelEn   string `gorm:"size:100;not null" validate:"required"`
	LabelAr   string `gorm:"size:100"`
	Href      string `gorm:"size:512;not null" validate:"required"`
	SortOrder int
	IsActive  bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Label returns the navigation label for the given language.
func (n *NavigationItem) Label(lang string) string {
	if lang == "ar" && n.LabelAr != "" {
		return n.LabelAr
	}

	return n.LabelEn
}
