// Generates an example news page from a mixed reflections feed and writes it
// to stdout.
// Usage: go run ./render/html/cmd/example > example.html
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/offgrid/almanac/core"
	htmlrender "github.com/offgrid/almanac/render/html"
)

const page = `<!DOCTYPE html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8">
  <title>Reflexões</title>
</head>
<body>
  <main class="content-section">
    <p>Conteúdo de notícias será adicionado em breve.</p>
  </main>
  <ul data-mount="sources"></ul>
</body>
</html>`

func main() {
	feed := []core.Reflection{
		core.NewLinked(core.LinkedReflection{
			Date: "2026-02-13",
			News: core.NewsItem{
				Title:         "City council approves new riverside park",
				Link:          "https://example.com/news/riverside-park",
				Source:        "Example Gazette",
				PublishedDate: "2026-02-12",
				Summary:       "The plan converts a disused rail yard into eight hectares of public green space.",
			},
			Reflection: core.ReflectionBody{
				Title:   "Making room to breathe",
				Content: "Cities are built by **small decisions** repeated over decades.\n\nA park is one of the few that pays back every single day:\n\n- shade in summer\n- a place to walk\n- neighbours who meet by accident",
				Excerpt: "A park pays back every single day.",
			},
			Sources: []core.Source{
				{Title: "Council minutes", Link: "https://example.com/minutes/2026-02-12", Source: "City Hall", Date: "2026-02-12"},
				{Title: "Rail yard history", Link: "https://example.com/history/rail-yard", Source: "Local Archive"},
			},
		}),
		core.NewLegacy(core.LegacyReflection{
			Date:    "2026-02-12",
			Title:   "On patience",
			Content: "Some work only shows its shape after you have stopped looking at it for a while.",
		}),
		core.NewLegacy(core.LegacyReflection{
			Date:    "2026-02-11",
			Content: strings.Repeat("Notes on the quiet parts of a long week. ", 8),
		}),
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	view := core.BuildReflections(feed, core.DefaultReflectionHistory, core.NewNormalizer("pt-BR"))

	r := htmlrender.New()
	r.Markdown = true
	r.RenderReflections(view, htmlrender.ReflectionMounts{
		Primary: htmlrender.FindMount(doc, ".content-section"),
		Sources: htmlrender.FindMount(doc, `[data-mount="sources"]`),
	})

	out, err := doc.Html()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(out)
}
