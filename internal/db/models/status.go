// Package models contains database model definitions.
package models

// PublishStatus represents the editorial lifecycle of publishable content.
type PublishStatus string

const (
	// StatusDraft marks content that is being worked on and not publicly visible.
	StatusDraft PublishStatus = "draft"
	// StatusPublished marks content that is live on the public site.
	StatusPublished PublishStatus = "published"
	// StatusArchived marks content that was published once and has been retired.
	StatusArchived PublishStatus = "archived"
)

// ContentType tags the shape of an opaque content blob so it can be
// validated and rendered correctly instead of being trusted blindly.
type ContentType string

const (
	// ContentText is plain text, rendered escaped.
	ContentText ContentType = "text"
	// ContentHTML is sanitized HTML, rendered as-is after sanitizing.
	ContentHTML ContentType = "html"
	// ContentMarkdown is markdown, rendered through goldmark.
	ContentMarkdown ContentType = "markdown"
)
