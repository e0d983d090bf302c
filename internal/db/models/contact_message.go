package models

import (
	"time"
)

// MessageStatus represents the triage state of a contact message.
type MessageStatus string

const (
	// MessageNew is the initial status of every incoming message.
	MessageNew MessageStatus = "new"
	// MessageRead marks a message an editor has opened.
	MessageRead MessageStatus = "read"
	// MessageReplied marks a message that has been answered.
	MessageReplied MessageStatus = "replied"
	// MessageArchived marks a message kept for the record only.
	MessageArchived MessageStatus = "archived"
)

// ContactMessage represents a message submitted through the public
// contact form.
type ContactMessage struct {
	ID      uint64        `gorm:"primaryKey"`
	Name    string        `gorm:"size:255;not null" validate:"required"`
	Email   string        `gorm:"size:255;not null" validate:"required,email"`
	Subject string        `gorm:"size:255"`
	Message string        `gorm:"type:text;not null" validate:"required"`
	Status  MessageStatus `gorm:"type:varchar(20);not null;default:'new'" validate:"omitempty,oneof=new read replied archived"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
