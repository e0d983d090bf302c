package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected Lang
	}{
		{"arabic", "ar", LangArabic},
		{"english", "en", LangEnglish},
		{"unknown falls back", "fr", Default},
		{"empty falls back", "", Default},
		{"garbage falls back", "##", Default},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Parse(tc.value))
		})
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Home", T(LangEnglish, "nav.home"))
	assert.Equal(t, "الرئيسية", T(LangArabic, "nav.home"))
}

func TestTFallbacks(t *testing.T) {
	assert.Equal(t, "no.such.key", T(LangArabic, "no.such.key"), "unknown keys stay visible")
	assert.Equal(t, "no.such.key", T(LangEnglish, "no.such.key"))
}

func TestDir(t *testing.T) {
	assert.Equal(t, "rtl", Dir(LangArabic))
	assert.Equal(t, "ltr", Dir(LangEnglish))
	assert.Equal(t, "ltr", Dir(Lang("fr")), "unknown languages render left-to-right")
}

func TestDictionariesAreComplete(t *testing.T) {
	for key := range dictionaries[LangEnglish] {
		assert.Contains(t, dictionaries[LangArabic], key, "missing arabic translation")
	}

	for key := range dictionaries[LangArabic] {
		assert.Contains(t, dictionaries[LangEnglish], key, "missing english translation")
	}
}
