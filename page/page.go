package page

import (
	"context"
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"
	"github.com/offgrid/almanac/reader"
	htmlrender "github.com/offgrid/almanac/render/html"
)

// Mounts holds the CSS selectors of the regions one content kind writes to.
type Mounts struct {
	Primary string
	Sources string
}

// Controller runs the fetch, build and render pipeline for one page load.
type Controller struct {
	Router     Router
	Reader     reader.Reader
	Renderer   *htmlrender.Renderer
	Normalizer core.Normalizer

	// Resources names the feed of each kind.
	Resources map[core.Kind]string
	// Limits is the history window of each kind.
	Limits map[core.Kind]int
	// Mounts is where each kind renders.
	Mounts map[core.Kind]Mounts
}

// Load resolves location to a content kind and, if one is routed, fetches its
// feed, builds the view and renders it into doc. It returns the kind handled.
// Fetch failures render the empty view; nothing is returned as an error.
func (c *Controller) Load(ctx context.Context, location string, doc *goquery.Document) core.Kind {
	kind := c.Router.Resolve(location)
	if kind == core.KindNone {
		log.Debug("page not routed", "location", location)
		return core.KindNone
	}

	view, ok := c.View(ctx, kind)
	log.Debug("loaded page", "location", location, "kind", kind, "fetched", ok, "history", len(view.History))

	c.render(kind, view, doc)
	return kind
}

// View fetches and builds the view for kind. The boolean reports whether the
// feed was fetched; on failure the view is empty.
func (c *Controller) View(ctx context.Context, kind core.Kind) (core.View, bool) {
	name := c.Resources[kind]
	limit := c.Limits[kind]

	switch kind {
	case core.KindReflections:
		feed, ok := reader.FetchReflections(ctx, c.Reader, name)
		if len(feed) > 0 {
			log.Debug("latest reflection", "date", feed[0].Date(), "schema", feed[0].Schema)
		}
		return core.BuildReflections(feed, limit, c.Normalizer), ok
	case core.KindMotivation:
		feed, ok := reader.FetchMotivations(ctx, c.Reader, name)
		return core.BuildMotivations(feed, limit, c.Normalizer), ok
	default:
		return core.View{Kind: kind, History: []core.Entry{}}, false
	}
}

func (c *Controller) render(kind core.Kind, view core.View, doc *goquery.Document) {
	mounts := c.Mounts[kind]
	switch kind {
	case core.KindReflections:
		c.Renderer.RenderReflections(view, htmlrender.ReflectionMounts{
			Primary: htmlrender.FindMount(doc, mounts.Primary),
			Sources: htmlrender.FindMount(doc, mounts.Sources),
		})
	case core.KindMotivation:
		c.Renderer.RenderMotivation(view, htmlrender.FindMount(doc, mounts.Primary))
	}
}

// LoadPage parses page markup from r, runs Load and writes the document to w.
// Unrouted pages are written back unchanged apart from HTML normalization.
func (c *Controller) LoadPage(ctx context.Context, location string, r io.Reader, w io.Writer) (core.Kind, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return core.KindNone, fmt.Errorf("parse page %s: %w", location, err)
	}

	kind := c.Load(ctx, location, doc)

	out, err := doc.Html()
	if err != nil {
		return kind, fmt.Errorf("serialize page %s: %w", location, err)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return kind, fmt.Errorf("write page %s: %w", location, err)
	}
	return kind, nil
}
