package gateway

import (
	"github.com/microcosm-cc/bluemonday"
)

// htmlPolicy strips everything UGC-unsafe from editor-supplied HTML.
// Content blobs are sanitized at this boundary instead of being trusted
// on render.
var htmlPolicy = bluemonday.UGCPolicy() //nolint:gochecknoglobals

// SanitizeHTML returns the UGC-safe subset of the given HTML.
func SanitizeHTML(html string) string {
	return htmlPolicy.Sanitize(html)
}
