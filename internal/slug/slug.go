// Package slug generates URL-friendly slugs from bilingual titles.
// Arabic and other non-Latin input is transliterated to ASCII first so
// every slug stays routable.
package slug

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

var (
	// invalidChars matches everything outside lowercase alphanumerics and hyphens.
	invalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	// multipleHyphens matches runs of consecutive hyphens.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Make converts a title to a URL-friendly slug: transliterate to ASCII,
// lowercase, spaces to hyphens, strip everything else.
func Make(title string) string {
	s := unidecode.Unidecode(title)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = invalidChars.ReplaceAllString(s, "")
	s = multipleHyphens.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}

// IsValid reports whether s is already a well-formed slug: lowercase
// alphanumerics and single interior hyphens only.
func IsValid(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}

	if s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}

	return !strings.Contains(s, "--")
}
