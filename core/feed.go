// Package core defines the content records read from JSON feeds and the
// normalized view model that every renderer consumes.
package core

import (
	"encoding/json"
	"errors"
)

// Kind names a content type. It selects the feed, the history window and the
// mount points a page uses.
type Kind string

const (
	KindNone        Kind = ""
	KindReflections Kind = "reflections"
	KindMotivation  Kind = "motivation"
)

// ParseKind returns the Kind for s and whether it is a known content type.
func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindReflections, KindMotivation:
		return Kind(s), true
	case KindNone, "none":
		return KindNone, true
	default:
		return KindNone, false
	}
}

// Schema identifies which reflection record shape was decoded.
type Schema int

const (
	SchemaLegacy Schema = iota
	SchemaLinked
)

func (s Schema) String() string {
	if s == SchemaLinked {
		return "linked"
	}
	return "legacy"
}

// LegacyReflection is the original flat record shape.
type LegacyReflection struct {
	Date    string `json:"date"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt,omitempty"`
}

// LinkedReflection ties a reflection to the news item that prompted it.
type LinkedReflection struct {
	Date       string         `json:"date"`
	News       NewsItem       `json:"news"`
	Reflection ReflectionBody `json:"reflection"`
	Sources    []Source       `json:"sources,omitempty"`
}

// NewsItem is the referenced article of a linked reflection.
type NewsItem struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Summary       string `json:"summary,omitempty"`
	Source        string `json:"source"`
	PublishedDate string `json:"publishedDate,omitempty"`
}

// ReflectionBody is the authored text of a linked reflection.
type ReflectionBody struct {
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
	Excerpt string `json:"excerpt,omitempty"`
}

// Source is one further reading entry attached to a linked reflection.
type Source struct {
	Title  string `json:"title"`
	Link   string `json:"link"`
	Source string `json:"source"`
	Date   string `json:"date"`
}

// Reflection holds exactly one of the two reflection shapes. Schema reports
// which one; the other field is the zero value.
type Reflection struct {
	Schema Schema
	Legacy LegacyReflection
	Linked LinkedReflection
}

// NewLegacy wraps a legacy record.
func NewLegacy(r LegacyReflection) Reflection {
	return Reflection{Schema: SchemaLegacy, Legacy: r}
}

// NewLinked wraps a linked record.
func NewLinked(r LinkedReflection) Reflection {
	return Reflection{Schema: SchemaLinked, Linked: r}
}

// Date returns the record date regardless of shape.
func (r Reflection) Date() string {
	if r.Schema == SchemaLinked {
		return r.Linked.Date
	}
	return r.Legacy.Date
}

// UnmarshalJSON decodes a record as linked when both "news" and "reflection"
// are objects, and as legacy otherwise. Fields of the wrong JSON type decode
// as absent so one malformed record never fails the whole feed.
func (r *Reflection) UnmarshalJSON(data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}

	news, newsOK := m["news"].(map[string]any)
	body, bodyOK := m["reflection"].(map[string]any)
	if !newsOK || !bodyOK {
		*r = NewLegacy(LegacyReflection{
			Date:    asString(m["date"]),
			Title:   asString(m["title"]),
			Content: asString(m["content"]),
			Excerpt: asString(m["excerpt"]),
		})
		return nil
	}

	linked := LinkedReflection{
		Date: asString(m["date"]),
		News: NewsItem{
			Title:         asString(news["title"]),
			Link:          asString(news["link"]),
			Summary:       asString(news["summary"]),
			Source:        asString(news["source"]),
			PublishedDate: asString(news["publishedDate"]),
		},
		Reflection: ReflectionBody{
			Title:   asString(body["title"]),
			Content: asString(body["content"]),
			Excerpt: asString(body["excerpt"]),
		},
	}
	if list, ok := m["sources"].([]any); ok {
		for _, item := range list {
			src, ok := item.(map[string]any)
			if !ok {
				continue
			}
			linked.Sources = append(linked.Sources, Source{
				Title:  asString(src["title"]),
				Link:   asString(src["link"]),
				Source: asString(src["source"]),
				Date:   asString(src["date"]),
			})
		}
	}
	*r = NewLinked(linked)
	return nil
}

// Motivation is a dated motivational quote.
type Motivation struct {
	Date    string `json:"date"`
	Content string `json:"content"`
}

// UnmarshalJSON decodes a quote, treating fields of the wrong type as absent.
func (q *Motivation) UnmarshalJSON(data []byte) error {
	m, err := decodeObject(data)
	if err != nil {
		return err
	}
	*q = Motivation{Date: asString(m["date"]), Content: asString(m["content"])}
	return nil
}

// decodeObject returns the fields of a JSON object. A value that is valid JSON
// but not an object yields an empty map.
func decodeObject(data []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}

func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
