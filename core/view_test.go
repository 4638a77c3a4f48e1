package core

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func motivations(n int) []Motivation {
	feed := make([]Motivation, n)
	for i := range feed {
		feed[i] = Motivation{Date: "2024-01-01", Content: fmt.Sprintf("quote %d", i)}
	}
	return feed
}

func TestBuildHistoryWindow(t *testing.T) {
	n := NewNormalizer("pt-BR")

	tests := []struct {
		name        string
		size        int
		limit       int
		wantHistory int
	}{
		{"single", 1, 20, 0},
		{"shorter than window", 5, 20, 4},
		{"exactly window plus latest", 21, 20, 20},
		{"longer than window", 25, 20, 20},
		{"zero limit", 5, 0, 0},
		{"negative limit", 5, -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed := motivations(tt.size)
			v := BuildMotivations(feed, tt.limit, n)

			require.NotNil(t, v.Latest)
			assert.Equal(t, n.Motivation(feed[0]), *v.Latest)
			assert.Len(t, v.History, tt.wantHistory)
			for i, e := range v.History {
				assert.Equal(t, fmt.Sprintf("quote %d", i+1), e.Body)
			}
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	n := NewNormalizer("pt-BR")

	for _, v := range []View{
		BuildReflections(nil, DefaultReflectionHistory, n),
		BuildReflections([]Reflection{}, DefaultReflectionHistory, n),
		BuildMotivations(nil, DefaultMotivationHistory, n),
	} {
		assert.Nil(t, v.Latest)
		assert.NotNil(t, v.History)
		assert.Empty(t, v.History)
		assert.True(t, v.Empty())
	}
}

func TestBuildMixedReflections(t *testing.T) {
	feed := []Reflection{
		NewLinked(LinkedReflection{
			Date:       "2024-01-01",
			News:       NewsItem{Title: "N1", Link: "https://x", Source: "S"},
			Reflection: ReflectionBody{Content: "C1"},
			Sources:    []Source{},
		}),
		NewLegacy(LegacyReflection{Date: "2023-12-31", Content: "Legacy", Title: "Old"}),
	}

	v := BuildReflections(feed, DefaultReflectionHistory, NewNormalizer("pt-BR"))

	assert.Equal(t, KindReflections, v.Kind)
	require.NotNil(t, v.Latest)
	assert.Equal(t, "Reflection on News Item", v.Latest.Title)
	assert.Equal(t, "C1", v.Latest.Body)
	require.NotNil(t, v.Latest.Linked)
	require.Len(t, v.History, 1)
	assert.Equal(t, "Old", v.History[0].Title)
	assert.Nil(t, v.History[0].Linked)
}

func TestBuildDoesNotSort(t *testing.T) {
	feed := []Motivation{
		{Date: "2020-01-01", Content: "oldest first"},
		{Date: "2024-01-01", Content: "newer"},
	}
	v := BuildMotivations(feed, 10, NewNormalizer("pt-BR"))
	assert.Equal(t, "oldest first", v.Latest.Body)
}

func TestEmptyText(t *testing.T) {
	assert.Equal(t, NoReflection, EmptyText(KindReflections))
	assert.Equal(t, NoContent, EmptyText(KindMotivation))
	assert.Equal(t, NoContent, EmptyText(KindNone))
}
