package i18n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected []LanguagePair
	}{
		{
			name:     "empty header has no pairs",
			header:   "",
			expected: nil,
		},
		{
			name:     "entry without quality defaults to 1",
			header:   "en-US",
			expected: []LanguagePair{{Tag: "en-US", Quality: "1"}},
		},
		{
			name:   "header order is kept",
			header: "en-US,de;q=0.8",
			expected: []LanguagePair{
				{Tag: "en-US", Quality: "1"},
				{Tag: "de", Quality: "0.8"},
			},
		},
		{
			name:   "lower quality first stays first",
			header: "fr;q=0.1, de;q=0.9",
			expected: []LanguagePair{
				{Tag: "fr", Quality: "0.1"},
				{Tag: "de", Quality: "0.9"},
			},
		},
		{
			name:   "whitespace and empty entries are ignored",
			header: " de-CH , , en ; q=0.5 ",
			expected: []LanguagePair{
				{Tag: "de-CH", Quality: "1"},
				{Tag: "en", Quality: "0.5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pairs, err := ParseAcceptLanguage(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, pairs)
		})
	}
}

func TestParseAcceptLanguage_Malformed(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "parameter without value", header: "en;q"},
		{name: "parameter other than q", header: "en;level=1"},
		{name: "malformed entry after valid ones", header: "en,de;0.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAcceptLanguage(tt.header)
			assert.ErrorIs(t, err, ErrMalformedAcceptLanguage)
		})
	}
}

func TestParseAcceptLanguage_TooLong(t *testing.T) {
	header := strings.Repeat("en,", maxAcceptLanguageLength)
	_, err := ParseAcceptLanguage(header)
	assert.ErrorIs(t, err, ErrAcceptLanguageTooLong)
}

func TestNegotiator_Detect(t *testing.T) {
	n := Negotiator{Locales: []string{"en", "de", "pt_BR"}, Default: "fr"}

	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "first match wins regardless of quality", header: "en-US,de;q=0.8", expected: "en"},
		{name: "header order beats quality", header: "de;q=0.1,en;q=0.9", expected: "de"},
		{name: "missing header yields default", header: "", expected: "fr"},
		{name: "no supported locale yields default", header: "ja,zh-CN;q=0.5", expected: "fr"},
		{name: "region tag matches base locale", header: "de-AT", expected: "de"},
		{name: "hyphen normalized to underscore", header: "pt-BR", expected: "pt_BR"},
		{name: "case folded", header: "PT-br", expected: "pt_BR"},
		{name: "base tag does not match regional locale", header: "pt", expected: "fr"},
		{name: "later entry matches", header: "ja, de;q=0.3", expected: "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := n.Detect(tt.header)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, code)
		})
	}
}

func TestNegotiator_DetectMalformedReturnsDefault(t *testing.T) {
	n := Negotiator{Locales: []string{"en", "de"}, Default: "en"}

	code, err := n.Detect("de;foo")
	assert.ErrorIs(t, err, ErrMalformedAcceptLanguage)
	assert.Equal(t, "en", code)
}

func TestNegotiator_ResultIsSupportedOrDefault(t *testing.T) {
	locales := []string{"en", "de", "de_CH", "zh_Hant"}
	n := Negotiator{Locales: locales, Default: "xx"}
	allowed := append([]string{"xx"}, locales...)

	headers := []string{
		"", "*", "de", "de-CH", "zh-Hant-TW", "en-GB;q=0.2", "fr, it;q=0.4",
		"DE-ch,en", "q=1", ";q=0.5", "de;q=", "e", "english",
	}
	for _, h := range headers {
		code, _ := n.Detect(h)
		assert.Contains(t, allowed, code, "header %q", h)
	}
}
