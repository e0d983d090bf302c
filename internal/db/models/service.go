package models

import (
	"time"
)

// Service represents one consulting service offered by the firm,
// with English and Arabic copies of its texts.
type Service struct {
	ID            uint64 `gorm:"primaryKey"`
	NameEn        string `gorm:"size:255;not null" validate:"required"`
	NameAr        string `gorm:"size:255"`
	DescriptionEn string `gorm:"type:text"`
	DescriptionAr string `gorm:"type:text"`
	Icon          string `gorm:"size:100"`
	Slug          string `gorm:"uniqueIndex;size:255;not null" validate:"required"`
	SortOrder     int
	IsActive      bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Name returns the service name for the given language, falling back to
// English when the Arabic copy is missing.
func (s *Service) Name(lang string) string {
	if lang == "ar" && s.NameAr != "" {
		return s.NameAr
	}

	return s.NameEn
}

// Description returns the service description for the given language.
func (s *Service) Description(lang string) string {
	if lang == "ar" && s.DescriptionAr != "" {
		return s.DescriptionAr
	}

	return s.DescriptionEn
}
