package core

import "unicode/utf8"

// Defaults shown in place of missing record fields.
const (
	DefaultLinkedTitle = "Reflection on News Item"
	DefaultLegacyTitle = "Daily Reflection"
	ContentUnavailable = "content unavailable"
	NewsUnavailable    = "news unavailable"
	UnknownSource      = "unknown source"
	DefaultNewsLink    = "#"
)

// SummaryLimit bounds the news summary shown with a linked reflection.
const SummaryLimit = 200

// Ellipsis marks truncated text.
const Ellipsis = "..."

// Entry is the schema-independent projection of one record. Renderers only
// ever see entries.
type Entry struct {
	Date     string        `json:"date"`
	LongDate string        `json:"long_date"`
	Title    string        `json:"title,omitempty"`
	Body     string        `json:"body"`
	Excerpt  string        `json:"excerpt,omitempty"`
	Linked   *LinkedSource `json:"linked,omitempty"`
	Sources  []SourceEntry `json:"sources,omitempty"`
}

// LinkedSource is the news item block of a linked reflection.
type LinkedSource struct {
	Title      string `json:"title"`
	Link       string `json:"link"`
	Summary    string `json:"summary,omitempty"`
	SourceName string `json:"source_name"`
	Published  string `json:"published"`
}

// SourceEntry is a further reading entry with its date already formatted.
type SourceEntry struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// Normalizer projects feed records onto entries, filling defaults for absent
// fields.
type Normalizer struct {
	Dates DateFormatter
}

// NewNormalizer returns a Normalizer that formats dates in locale.
func NewNormalizer(locale string) Normalizer {
	return Normalizer{Dates: NewDateFormatter(locale)}
}

// Reflection normalizes a reflection of either shape.
func (n Normalizer) Reflection(r Reflection) Entry {
	switch r.Schema {
	case SchemaLinked:
		return n.linked(r.Linked)
	default:
		return n.legacy(r.Legacy)
	}
}

func (n Normalizer) linked(r LinkedReflection) Entry {
	body := or(r.Reflection.Content, ContentUnavailable)
	e := Entry{
		Date:     n.Dates.Format(r.Date),
		LongDate: n.Dates.FormatLong(r.Date),
		Title:    or(r.Reflection.Title, DefaultLinkedTitle),
		Body:     body,
		Excerpt:  excerpt(r.Reflection.Excerpt, body),
		Linked: &LinkedSource{
			Title:      or(r.News.Title, NewsUnavailable),
			Link:       or(r.News.Link, DefaultNewsLink),
			Summary:    Truncate(r.News.Summary, SummaryLimit),
			SourceName: or(r.News.Source, UnknownSource),
			Published:  n.Dates.Format(r.News.PublishedDate),
		},
		Sources: []SourceEntry{},
	}
	for _, s := range r.Sources {
		e.Sources = append(e.Sources, SourceEntry{
			Title:  s.Title,
			Link:   or(s.Link, DefaultNewsLink),
			Source: s.Source,
			Date:   n.Dates.Format(s.Date),
		})
	}
	return e
}

func (n Normalizer) legacy(r LegacyReflection) Entry {
	return Entry{
		Date:     n.Dates.Format(r.Date),
		LongDate: n.Dates.FormatLong(r.Date),
		Title:    or(r.Title, DefaultLegacyTitle),
		Body:     r.Content,
		Excerpt:  excerpt(r.Excerpt, r.Content),
	}
}

// Motivation normalizes a quote. Quotes have no title, excerpt or sources.
func (n Normalizer) Motivation(m Motivation) Entry {
	return Entry{
		Date:     n.Dates.Format(m.Date),
		LongDate: n.Dates.FormatLong(m.Date),
		Body:     m.Content,
	}
}

// Truncate returns s unchanged when it has at most n characters, otherwise
// its first n characters followed by Ellipsis.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + Ellipsis
}

// excerpt drops an excerpt that merely repeats the body.
func excerpt(excerpt, body string) string {
	if excerpt == body {
		return ""
	}
	return excerpt
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
