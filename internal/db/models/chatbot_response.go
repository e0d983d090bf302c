package models

import (
	"strings"
	"time"
)

// ChatbotResponse represents one canned answer of the site chatbot.
// Responses are matched against visitor messages by trigger keyword;
// among matches the highest Priority wins.
type ChatbotResponse struct {
	ID uint64 `gorm:"primaryKey"`
	// TriggerKeywords is a comma separated keyword list.
	TriggerKeywords string `gorm:"size:500;not null" validate:"required"`
	ResponseText    string `gorm:"type:text;not null" validate:"required"`
	Priority        int
	IsActive        bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Keywords splits the comma separated TriggerKeywords field into
// lower-cased trimmed keywords.
func (r *ChatbotResponse) Keywords() []string {
	parts := strings.Split(r.TriggerKeywords, ",")
	keywords := make([]string, 0, len(parts))

	for _, part := range parts {
		if keyword := strings.ToLower(strings.TrimSpace(part)); keyword != "" {
			keywords = append(keywords, keyword)
		}
	}

	return keywords
}

// Matches reports whether any trigger keyword occurs in the message.
// Matching is case-insensitive substring containment.
func (r *ChatbotResponse) Matches(message string) bool {
	message = strings.ToLower(message)

	for _, keyword := range r.Keywords() {
		if strings.Contains(message, keyword) {
			return true
		}
	}

	return false
}
