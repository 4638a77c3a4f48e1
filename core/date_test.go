package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestDateFormatterFormat(t *testing.T) {
	tests := []struct {
		name   string
		locale string
		raw    string
		want   string
	}{
		{"missing", "pt-BR", "", DateUnavailable},
		{"whitespace only is returned as-is", "pt-BR", "   ", "   "},
		{"padded date", "pt-BR", " 2024-01-05 ", "05/01/2024"},
		{"invalid month and day", "pt-BR", "2024-13-40", "2024-13-40"},
		{"day out of range", "pt-BR", "2024-02-30", "2024-02-30"},
		{"free text", "pt-BR", "yesterday", "yesterday"},
		{"pt-BR", "pt-BR", "2024-01-05", "05/01/2024"},
		{"en-US", "en-US", "2024-01-05", "01/05/2024"},
		{"en-GB", "en-GB", "2024-01-05", "05/01/2024"},
		{"timestamp keeps calendar date", "pt-BR", "2024-03-09T22:15:00Z", "09/03/2024"},
		{"leap day", "pt-BR", "2024-02-29", "29/02/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewDateFormatter(tt.locale)
			assert.Equal(t, tt.want, f.Format(tt.raw))
		})
	}
}

func TestDateFormatterFormatLong(t *testing.T) {
	tests := []struct {
		locale string
		raw    string
		want   string
	}{
		{"pt-BR", "2024-01-01", "1 de janeiro de 2024"},
		{"pt-BR", "2024-03-15", "15 de março de 2024"},
		{"en-US", "2024-01-01", "January 1, 2024"},
		{"en-GB", "2024-12-25", "25 December 2024"},
		{"pt-BR", "", DateUnavailable},
		{"pt-BR", "2024-13-40", "2024-13-40"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+" "+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, NewDateFormatter(tt.locale).FormatLong(tt.raw))
		})
	}
}

func TestMatchLocale(t *testing.T) {
	assert.Equal(t, language.BrazilianPortuguese, MatchLocale(""))
	assert.Equal(t, language.BrazilianPortuguese, MatchLocale("not a tag!"))
	assert.Equal(t, language.BrazilianPortuguese, MatchLocale("pt-BR"))
	assert.Equal(t, language.AmericanEnglish, MatchLocale("en-US"))
	assert.Equal(t, language.BritishEnglish, MatchLocale("en-GB"))
}

func TestZeroDateFormatterUsesDefault(t *testing.T) {
	var f DateFormatter
	assert.Equal(t, DefaultLocale, f.Locale())
	assert.Equal(t, "05/01/2024", f.Format("2024-01-05"))
}
