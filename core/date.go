package core

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"
)

// DateUnavailable is shown when a record has no date at all.
const DateUnavailable = "date unavailable"

// dateLayout is the calendar date layout used by the feeds.
const dateLayout = "2006-01-02"

// DefaultLocale is used when no locale is configured or the configured one is
// not supported.
var DefaultLocale = language.BrazilianPortuguese

var supportedLocales = []language.Tag{
	language.BrazilianPortuguese, // first entry is the matcher fallback
	language.AmericanEnglish,
	language.BritishEnglish,
}

var localeMatcher = language.NewMatcher(supportedLocales)

type dateStyle struct {
	short func(t time.Time) string
	long  func(t time.Time) string
}

var ptMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var enMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var dateStyles = map[language.Tag]dateStyle{
	language.BrazilianPortuguese: {
		short: func(t time.Time) string { return t.Format("02/01/2006") },
		long: func(t time.Time) string {
			return fmt.Sprintf("%d de %s de %d", t.Day(), ptMonths[t.Month()-1], t.Year())
		},
	},
	language.AmericanEnglish: {
		short: func(t time.Time) string { return t.Format("01/02/2006") },
		long: func(t time.Time) string {
			return fmt.Sprintf("%s %d, %d", enMonths[t.Month()-1], t.Day(), t.Year())
		},
	},
	language.BritishEnglish: {
		short: func(t time.Time) string { return t.Format("02/01/2006") },
		long: func(t time.Time) string {
			return fmt.Sprintf("%d %s %d", t.Day(), enMonths[t.Month()-1], t.Year())
		},
	},
}

// DateFormatter renders feed dates for display in a fixed locale.
type DateFormatter struct {
	locale language.Tag
}

// NewDateFormatter returns a formatter for the closest supported match of
// locale. An empty or unparseable locale selects DefaultLocale.
func NewDateFormatter(locale string) DateFormatter {
	return DateFormatter{locale: MatchLocale(locale)}
}

// MatchLocale maps a BCP 47 tag to the closest supported locale.
func MatchLocale(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultLocale
	}
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		return DefaultLocale
	}
	return supportedLocales[idx]
}

// Locale reports the locale the formatter renders in.
func (f DateFormatter) Locale() language.Tag {
	if _, ok := dateStyles[f.locale]; !ok {
		return DefaultLocale
	}
	return f.locale
}

// Format renders raw as a numeric day/month/year date. Empty input yields
// DateUnavailable; any other input that is not a valid calendar date,
// whitespace included, is returned as-is.
func (f DateFormatter) Format(raw string) string {
	return f.render(raw, func(s dateStyle, t time.Time) string { return s.short(t) })
}

// FormatLong renders raw with the full month name, for headings.
func (f DateFormatter) FormatLong(raw string) string {
	return f.render(raw, func(s dateStyle, t time.Time) string { return s.long(t) })
}

func (f DateFormatter) render(raw string, fn func(dateStyle, time.Time) string) string {
	if raw == "" {
		return DateUnavailable
	}
	t, ok := ParseDate(raw)
	if !ok {
		return raw
	}
	return fn(dateStyles[f.Locale()], t)
}

// ParseDate parses a calendar date (midnight local time) or an RFC 3339
// timestamp, keeping only its calendar date.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(dateLayout, s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}
