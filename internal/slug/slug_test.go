package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple english title",
			input:    "Fire Investigation Basics",
			expected: "fire-investigation-basics",
		},
		{
			name:     "punctuation stripped",
			input:    "Risk & Safety: a primer!",
			expected: "risk-safety-a-primer",
		},
		{
			name:     "consecutive separators collapse",
			input:    "a  --  b",
			expected: "a-b",
		},
		{
			name:     "leading and trailing hyphens trimmed",
			input:    " -hello- ",
			expected: "hello",
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Make(tc.input))
		})
	}
}

func TestMakeOutputIsValid(t *testing.T) {
	for _, input := range []string{
		"Fire Investigation Basics",
		"الأدلة الجنائية في مسرح الحريق",
		"Ünïcödé Nörmälizätiön",
	} {
		assert.True(t, IsValid(Make(input)), "Make(%q) must produce a valid slug", input)
	}
}

func TestIsValid(t *testing.T) {
	testCases := []struct {
		slug  string
		valid bool
	}{
		{"fire-investigation", true},
		{"abc123", true},
		{"", false},
		{"Upper-Case", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"with space", false},
	}

	for _, tc := range testCases {
		t.Run(tc.slug, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValid(tc.slug))
		})
	}
}
