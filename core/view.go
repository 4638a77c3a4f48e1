package core

// Default history windows. They bound the size of the rendered page and are
// unrelated to how much content a feed holds.
const (
	DefaultReflectionHistory = 10
	DefaultMotivationHistory = 20
)

// View is a built feed: the latest entry and a bounded window of older ones.
type View struct {
	Kind    Kind    `json:"kind"`
	Latest  *Entry  `json:"latest"`
	History []Entry `json:"history"`
}

// Text shown in place of a view with nothing to show.
const (
	NoReflection = "no reflection available"
	NoContent    = "no content available"
)

// Empty reports whether the view has nothing to show.
func (v View) Empty() bool {
	return v.Latest == nil
}

// EmptyText is the message shown for an empty view of kind.
func EmptyText(k Kind) string {
	if k == KindReflections {
		return NoReflection
	}
	return NoContent
}

// Build splits feed into its latest record (index 0) and at most limit older
// records, normalizing each. The feed is assumed to be ordered newest first.
func Build[T any](kind Kind, feed []T, limit int, normalize func(T) Entry) View {
	v := View{Kind: kind, History: []Entry{}}
	if len(feed) == 0 {
		return v
	}

	latest := normalize(feed[0])
	v.Latest = &latest

	n := min(len(feed)-1, max(limit, 0))
	for _, rec := range feed[1 : 1+n] {
		v.History = append(v.History, normalize(rec))
	}
	return v
}

// BuildReflections builds a reflections view.
func BuildReflections(feed []Reflection, limit int, n Normalizer) View {
	return Build(KindReflections, feed, limit, n.Reflection)
}

// BuildMotivations builds a motivation view.
func BuildMotivations(feed []Motivation, limit int, n Normalizer) View {
	return Build(KindMotivation, feed, limit, n.Motivation)
}
