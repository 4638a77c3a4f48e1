package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLegacy(t *testing.T) {
	n := NewNormalizer("pt-BR")

	t.Run("all fields", func(t *testing.T) {
		e := n.Reflection(NewLegacy(LegacyReflection{
			Date: "2023-12-31", Title: "Old", Content: "Legacy", Excerpt: "Short",
		}))
		assert.Equal(t, "31/12/2023", e.Date)
		assert.Equal(t, "31 de dezembro de 2023", e.LongDate)
		assert.Equal(t, "Old", e.Title)
		assert.Equal(t, "Legacy", e.Body)
		assert.Equal(t, "Short", e.Excerpt)
		assert.Nil(t, e.Linked)
		assert.Nil(t, e.Sources)
	})

	t.Run("default title", func(t *testing.T) {
		e := n.Reflection(NewLegacy(LegacyReflection{Date: "2024-01-01", Content: "C"}))
		assert.Equal(t, DefaultLegacyTitle, e.Title)
	})

	t.Run("excerpt equal to content is dropped", func(t *testing.T) {
		e := n.Reflection(NewLegacy(LegacyReflection{Content: "Same", Excerpt: "Same"}))
		assert.Empty(t, e.Excerpt)
		assert.Equal(t, DateUnavailable, e.Date)
	})

	t.Run("excerpt differing only in case is kept", func(t *testing.T) {
		e := n.Reflection(NewLegacy(LegacyReflection{Content: "Same", Excerpt: "same"}))
		assert.Equal(t, "same", e.Excerpt)
	})
}

func TestNormalizeLinked(t *testing.T) {
	n := NewNormalizer("pt-BR")

	t.Run("defaults for missing fields", func(t *testing.T) {
		e := n.Reflection(NewLinked(LinkedReflection{Date: "2024-01-01"}))
		assert.Equal(t, DefaultLinkedTitle, e.Title)
		assert.Equal(t, ContentUnavailable, e.Body)
		require.NotNil(t, e.Linked)
		assert.Equal(t, NewsUnavailable, e.Linked.Title)
		assert.Equal(t, "#", e.Linked.Link)
		assert.Equal(t, UnknownSource, e.Linked.SourceName)
		assert.Equal(t, "", e.Linked.Summary)
		assert.Equal(t, DateUnavailable, e.Linked.Published)
		assert.NotNil(t, e.Sources)
		assert.Empty(t, e.Sources)
	})

	t.Run("populated", func(t *testing.T) {
		e := n.Reflection(NewLinked(LinkedReflection{
			Date: "2024-02-10",
			News: NewsItem{
				Title: "N1", Link: "https://x", Summary: "Sum", Source: "S", PublishedDate: "2024-02-09",
			},
			Reflection: ReflectionBody{Title: "R", Content: "C1", Excerpt: "E"},
			Sources: []Source{
				{Title: "A", Link: "https://a", Source: "SA", Date: "2024-02-01"},
				{Title: "B", Source: "SB", Date: "bad"},
			},
		}))
		assert.Equal(t, "R", e.Title)
		assert.Equal(t, "C1", e.Body)
		assert.Equal(t, "E", e.Excerpt)
		assert.Equal(t, &LinkedSource{
			Title: "N1", Link: "https://x", Summary: "Sum", SourceName: "S", Published: "09/02/2024",
		}, e.Linked)
		require.Len(t, e.Sources, 2)
		assert.Equal(t, SourceEntry{Title: "A", Link: "https://a", Source: "SA", Date: "01/02/2024"}, e.Sources[0])
		assert.Equal(t, "#", e.Sources[1].Link)
		assert.Equal(t, "bad", e.Sources[1].Date)
	})

	t.Run("summary truncated", func(t *testing.T) {
		long := strings.Repeat("a", 250)
		e := n.Reflection(NewLinked(LinkedReflection{News: NewsItem{Summary: long}}))
		assert.Equal(t, strings.Repeat("a", 200)+Ellipsis, e.Linked.Summary)
	})

	t.Run("excerpt equal to reflection content is dropped", func(t *testing.T) {
		e := n.Reflection(NewLinked(LinkedReflection{Reflection: ReflectionBody{Content: "X", Excerpt: "X"}}))
		assert.Empty(t, e.Excerpt)
	})
}

func TestNormalizeMotivation(t *testing.T) {
	e := NewNormalizer("en-US").Motivation(Motivation{Date: "2024-07-04", Content: "Keep going"})
	assert.Equal(t, Entry{Date: "07/04/2024", LongDate: "July 4, 2024", Body: "Keep going"}, e)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"empty", "", 200, ""},
		{"shorter", "abc", 5, "abc"},
		{"exact", "abcde", 5, "abcde"},
		{"longer", "abcdef", 5, "abcde..."},
		{"multibyte", "ação e reação", 4, "ação..."},
		{"zero", "abc", 0, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.n))
		})
	}
}
