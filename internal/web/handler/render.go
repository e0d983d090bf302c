package handler

import (
	"bytes"
	"html"
	"html/template"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/alaaabdelzaher/web-sub000/internal/db/models"
	"github.com/alaaabdelzaher/web-sub000/internal/gateway"
)

// markdown is the shared converter for markdown-typed content.
var markdown = goldmark.New( //nolint:gochecknoglobals
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// RenderContent converts stored content to HTML according to its content
// type. HTML content was sanitized when it was written; markdown output
// is sanitized here because the converter can emit raw fragments.
func RenderContent(contentType models.ContentType, content string) template.HTML {
	switch contentType {
	case models.ContentMarkdown:
		var buf bytes.Buffer
		if err := markdown.Convert([]byte(content), &buf); err != nil {
			log.Error().Err(err).Msg("markdown conversion failed")

			return escapeText(content)
		}

		return template.HTML(gateway.SanitizeHTML(buf.String())) //nolint:gosec

	case models.ContentHTML:
		return template.HTML(content) //nolint:gosec

	default:
		return escapeText(content)
	}
}

// escapeText renders plain text as escaped HTML paragraphs.
func escapeText(content string) template.HTML {
	paragraphs := strings.Split(content, "\n\n")

	var buf strings.Builder

	for _, p := range paragraphs {
		if p = strings.TrimSpace(p); p == "" {
			continue
		}

		buf.WriteString("<p>")
		buf.WriteString(strings.ReplaceAll(html.EscapeString(p), "\n", "<br>"))
		buf.WriteString("</p>\n")
	}

	return template.HTML(buf.String()) //nolint:gosec
}
