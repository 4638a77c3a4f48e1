package page

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/offgrid/almanac/core"
	"github.com/offgrid/almanac/reader"
	htmlrender "github.com/offgrid/almanac/render/html"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const newsPage = `<!DOCTYPE html>
<html><body>
<main class="content-section"><p>Conteúdo de notícias será adicionado em breve.</p></main>
<ul data-mount="sources"><li>soon</li></ul>
</body></html>`

const motivationPage = `<!DOCTYPE html>
<html><body>
<main class="content-section">
<p data-slot="message">Em breve.</p>
<div data-slot="history"><p>Conteúdo de motivação será adicionado.</p></div>
</main>
</body></html>`

const reflectionsJSON = `[
	{"date":"2024-01-01","news":{"title":"N1","link":"https://x","source":"S"},"reflection":{"content":"C1"},"sources":[]},
	{"date":"2023-12-31","content":"Legacy","title":"Old"}
]`

func testController(fsys fstest.MapFS) *Controller {
	return &Controller{
		Router:     NewRouter(DefaultRoutes()),
		Reader:     &reader.FS{FS: fsys},
		Renderer:   htmlrender.New(),
		Normalizer: core.NewNormalizer("pt-BR"),
		Resources: map[core.Kind]string{
			core.KindReflections: "data/reflections.json",
			core.KindMotivation:  "data/motivations.json",
		},
		Limits: map[core.Kind]int{
			core.KindReflections: core.DefaultReflectionHistory,
			core.KindMotivation:  core.DefaultMotivationHistory,
		},
		Mounts: map[core.Kind]Mounts{
			core.KindReflections: {Primary: ".content-section", Sources: `[data-mount="sources"]`},
			core.KindMotivation:  {Primary: ".content-section"},
		},
	}
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func motivationsJSON(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = `{"date":"2024-01-01","content":"q"}`
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestIdentity(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"/", ""},
		{"news.html", "news.html"},
		{"/site/news.html", "news.html"},
		{"/site/news.html?ref=home#top", "news.html"},
		{"https://example.com/motivacao.html", "motivacao.html"},
		{"https://example.com", ""},
		{"https://example.com/blog/", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Identity(tt.in))
		})
	}
}

func TestRouterResolve(t *testing.T) {
	r := NewRouter(DefaultRoutes())

	assert.Equal(t, core.KindReflections, r.Resolve("/news.html"))
	assert.Equal(t, core.KindReflections, r.Resolve("/"))
	assert.Equal(t, core.KindMotivation, r.Resolve("/motivacao.html?x=1"))
	assert.Equal(t, core.KindNone, r.Resolve("/blog.html"))
	assert.Equal(t, core.KindNone, r.Resolve("/breaking-news.html"), "no substring matching")

	custom := NewRouter(map[string]core.Kind{"/quotes.html": core.KindMotivation})
	assert.Equal(t, core.KindMotivation, custom.Resolve("quotes.html"))
	assert.Equal(t, core.KindNone, custom.Resolve("news.html"))

	var zero Router
	assert.Equal(t, core.KindNone, zero.Resolve("news.html"))
}

func TestRouterRoutes(t *testing.T) {
	r := NewRouter(map[string]core.Kind{"/site/quotes.html": core.KindMotivation, "/": core.KindReflections})

	routes := r.Routes()
	assert.Equal(t, map[string]core.Kind{"quotes.html": core.KindMotivation, "": core.KindReflections}, routes)

	routes["news.html"] = core.KindReflections
	assert.Equal(t, core.KindNone, r.Resolve("news.html"), "returned map is a copy")
}

func TestLoadReflections(t *testing.T) {
	c := testController(fstest.MapFS{"data/reflections.json": {Data: []byte(reflectionsJSON)}})
	doc := parse(t, newsPage)

	kind := c.Load(context.Background(), "/news.html", doc)

	assert.Equal(t, core.KindReflections, kind)
	assert.Equal(t, "Reflection on News Item", doc.Find(".reflection-latest .reflection-title").Text())
	assert.Equal(t, "C1", doc.Find(".reflection-latest .reflection-body").Text())
	assert.Equal(t, "Old", doc.Find(".reflection-card .reflection-title").Text())
	assert.Equal(t, "soon", doc.Find(`[data-mount="sources"]`).Text(), "empty source list leaves mount untouched")
}

func TestLoadReflectionsEmptyFeed(t *testing.T) {
	c := testController(fstest.MapFS{"data/reflections.json": {Data: []byte(`[]`)}})
	doc := parse(t, newsPage)

	c.Load(context.Background(), "news.html", doc)

	assert.Equal(t, htmlrender.NoReflection, strings.TrimSpace(doc.Find(".content-section").Text()))
	assert.Equal(t, "soon", doc.Find(`[data-mount="sources"]`).Text())
}

func TestLoadReflectionsFetchFailure(t *testing.T) {
	c := testController(fstest.MapFS{})
	doc := parse(t, newsPage)

	kind := c.Load(context.Background(), "news.html", doc)

	assert.Equal(t, core.KindReflections, kind)
	assert.Equal(t, htmlrender.NoReflection, strings.TrimSpace(doc.Find(".content-section").Text()))
}

func TestLoadMotivation(t *testing.T) {
	c := testController(fstest.MapFS{"data/motivations.json": {Data: []byte(motivationsJSON(25))}})
	doc := parse(t, motivationPage)

	kind := c.Load(context.Background(), "/motivacao.html", doc)

	assert.Equal(t, core.KindMotivation, kind)
	assert.Equal(t, `"q"`, doc.Find(`[data-slot="message"]`).Text())
	assert.Equal(t, 20, doc.Find(".motivation-item").Length())
}

func TestLoadUnroutedPage(t *testing.T) {
	c := testController(fstest.MapFS{"data/reflections.json": {Data: []byte(reflectionsJSON)}})
	doc := parse(t, newsPage)
	before, err := doc.Html()
	require.NoError(t, err)

	kind := c.Load(context.Background(), "/about.html", doc)

	assert.Equal(t, core.KindNone, kind)
	after, err := doc.Html()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestLoadPage(t *testing.T) {
	c := testController(fstest.MapFS{"data/reflections.json": {Data: []byte(reflectionsJSON)}})

	var buf bytes.Buffer
	kind, err := c.LoadPage(context.Background(), "news.html", strings.NewReader(newsPage), &buf)
	require.NoError(t, err)
	assert.Equal(t, core.KindReflections, kind)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, `data-state="populated"`)
	assert.Contains(t, out, "C1")
}

func TestControllerView(t *testing.T) {
	c := testController(fstest.MapFS{"data/motivations.json": {Data: []byte(motivationsJSON(3))}})

	v, ok := c.View(context.Background(), core.KindMotivation)
	require.True(t, ok)
	assert.Equal(t, core.KindMotivation, v.Kind)
	assert.Len(t, v.History, 2)

	v, ok = c.View(context.Background(), core.KindReflections)
	assert.False(t, ok)
	assert.True(t, v.Empty())
}
