package models

import (
	"strings"
	"time"
)

// BlogPost represents a blog article on the public site.
type BlogPost struct {
	ID      uint64 `gorm:"primaryKey"`
	Title   string `gorm:"size:255;not null" validate:"required"`
	Slug    string `gorm:"uniqueIndex;size:255;not null" validate:"required"`
	Excerpt string `gorm:"size:500"`
	Content string `gorm:"type:text"`
	Author  string `gorm:"size:100"`
	// Tags is a comma separated list. Collections are small; a join table
	// would be overkill here.
	Tags     string        `gorm:"size:500"`
	ReadTime int           // estimated reading time in minutes
	Views    uint64        `gorm:"default:0"`
	Status   PublishStatus `gorm:"type:varchar(20);not null;default:'draft'" validate:"omitempty,oneof=draft published archived"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagList splits the comma separated Tags field into trimmed tags.
func (p *BlogPost) TagList() []string {
	if p.Tags == "" {
		return nil
	}

	parts := strings.Split(p.Tags, ",")
	tags := make([]string, 0, len(parts))

	for _, part := range parts {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}

	return tags
}

// Published reports whether the post is visible on the public site.
func (p *BlogPost) Published() bool {
	return p.Status == StatusPublished
}
