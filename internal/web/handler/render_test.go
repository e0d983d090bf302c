package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
)

func TestRenderContent(t *testing.T) {
	testCases := []struct {
		name        string
		contentType models.ContentType
		content     string
		contains    string
		excludes    string
	}{
		{
			name:        "markdown heading",
			contentType: models.ContentMarkdown,
			content:     "# Title\n\nbody",
			contains:    "<h1>Title</h1>",
		},
		{
			name:        "markdown scripts sanitized",
			contentType: models.ContentMarkdown,
			content:     "hello\n<script>alert(1)</script>",
			excludes:    "<script>",
		},
		{
			name:        "html passed through",
			contentType: models.ContentHTML,
			content:     "<p>kept</p>",
			contains:    "<p>kept</p>",
		},
		{
			name:        "text escaped",
			contentType: models.ContentText,
			content:     "a < b",
			contains:    "a &lt; b",
		},
		{
			name:        "text paragraphs",
			contentType: models.ContentText,
			content:     "first\n\nsecond",
			contains:    "<p>first</p>",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := string(RenderContent(tc.contentType, tc.content))

			if tc.contains != "" {
				assert.Contains(t, out, tc.contains)
			}

			if tc.excludes != "" {
				assert.NotContains(t, out, tc.excludes)
			}
		})
	}
}
