// Package html renders built views into mount points of an HTML page.
// Fragments come from embedded templates; bodies may be converted from
// Markdown with goldmark and chroma highlighting.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/offgrid/almanac/core"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Text written when a feed has nothing to show.
const (
	NoReflection = core.NoReflection
	NoContent    = core.NoContent
)

// Section headings.
const (
	ReflectionHistoryHeading = "Reflection history"
	MotivationHistoryHeading = "Previous quotes"
)

// CardTextLimit bounds the body shown on a history card without an excerpt.
const CardTextLimit = 200

// ReflectionMounts are the regions a reflections page exposes. Sources is
// optional.
type ReflectionMounts struct {
	Primary *Mount
	Sources *Mount
}

// Renderer writes views into page mounts.
type Renderer struct {
	// Markdown converts entry bodies from Markdown. When false bodies are
	// escaped plain text.
	Markdown bool

	md   goldmark.Markdown
	tmpl *template.Template
}

// New creates a Renderer with goldmark configured for GFM and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles, pages ship no chroma CSS
				),
			),
		),
		// Raw HTML in feed content is dropped.
	)

	tmpl := template.Must(template.New("reflection.html").ParseFS(content, "templates/*.html"))

	return &Renderer{md: md, tmpl: tmpl}
}

type reflectionData struct {
	Entry    core.Entry
	Body     template.HTML
	Markdown bool
}

type historyData struct {
	Heading string
	Cards   []cardData
}

type cardData struct {
	Date  string
	Title string
	Text  string
}

// RenderReflections writes the latest reflection, its sources and the history
// window. A nil primary mount means the page has no reflections section.
func (r *Renderer) RenderReflections(v core.View, m ReflectionMounts) {
	if m.Primary == nil {
		return
	}
	if v.Latest == nil {
		r.placeholder(m.Primary, NoReflection)
		return
	}

	latest, err := r.reflection(*v.Latest)
	if err != nil {
		log.Error("render reflection", "err", err)
		r.placeholder(m.Primary, NoReflection)
		return
	}

	history, err := r.reflectionHistory(v.History)
	if err != nil {
		// The latest item still renders without its history.
		log.Error("render reflection history", "err", err)
		history = ""
	}

	m.Primary.clear()
	m.Primary.prepend(latest)
	if history != "" {
		m.Primary.append(history)
	}
	m.Primary.markPopulated()

	if m.Sources != nil && len(v.Latest.Sources) > 0 {
		list, err := r.execute("sources.html", v.Latest.Sources)
		if err != nil {
			log.Error("render sources", "err", err)
			return
		}
		m.Sources.replace(list)
		m.Sources.markPopulated()
	}
}

// RenderMotivation writes the latest quote into the message slot and the
// history window into the history slot. Without a mount or a latest quote it
// does nothing.
func (r *Renderer) RenderMotivation(v core.View, m *Mount) {
	if m == nil || v.Latest == nil {
		return
	}

	if msg := m.Slot(SlotMessage); msg != nil {
		msg.setText(quote(v.Latest.Body))
		msg.markPopulated()
	}

	if slot := m.Slot(SlotHistory); slot != nil && len(v.History) > 0 {
		list, err := r.motivationHistory(v.History)
		if err != nil {
			log.Error("render motivation history", "err", err)
		} else {
			slot.clear()
			slot.append(list)
			slot.markPopulated()
		}
	}

	m.markPopulated()
}

// RenderFragment renders the view without page markup: the latest item and
// its history as one HTML fragment.
func (r *Renderer) RenderFragment(v core.View) (string, error) {
	if v.Latest == nil {
		return r.execute("placeholder.html", core.EmptyText(v.Kind))
	}

	var head, history string
	var err error
	switch v.Kind {
	case core.KindMotivation:
		head = `<blockquote class="motivation-message">` + template.HTMLEscapeString(quote(v.Latest.Body)) + `</blockquote>`
		history, err = r.motivationHistory(v.History)
	default:
		head, err = r.reflection(*v.Latest)
		if err == nil {
			history, err = r.reflectionHistory(v.History)
		}
	}
	if err != nil {
		return "", err
	}
	return head + history, nil
}

func (r *Renderer) reflection(e core.Entry) (string, error) {
	body, err := r.body(e.Body)
	if err != nil {
		return "", err
	}
	return r.execute("reflection.html", reflectionData{Entry: e, Body: body, Markdown: r.Markdown})
}

func (r *Renderer) reflectionHistory(entries []core.Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	cards := make([]cardData, len(entries))
	for i, e := range entries {
		cards[i] = cardData{Date: e.Date, Title: e.Title, Text: cardText(e)}
	}
	return r.execute("reflection_history.html", historyData{Heading: ReflectionHistoryHeading, Cards: cards})
}

func (r *Renderer) motivationHistory(entries []core.Entry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}
	cards := make([]cardData, len(entries))
	for i, e := range entries {
		cards[i] = cardData{Date: e.Date, Text: quote(e.Body)}
	}
	return r.execute("motivation_history.html", historyData{Heading: MotivationHistoryHeading, Cards: cards})
}

func (r *Renderer) placeholder(m *Mount, text string) {
	h, err := r.execute("placeholder.html", text)
	if err != nil {
		log.Error("render placeholder", "err", err)
		h = `<p class="placeholder">` + template.HTMLEscapeString(text) + `</p>`
	}
	m.showPlaceholder(h)
}

func (r *Renderer) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute %s: %w", name, err)
	}
	return strings.TrimSpace(buf.String()), nil
}

// cardText is the excerpt when there is one, else the shortened body.
func cardText(e core.Entry) string {
	if e.Excerpt != "" {
		return e.Excerpt
	}
	return core.Truncate(e.Body, CardTextLimit)
}

func quote(s string) string {
	return `"` + s + `"`
}

// Render writes the fragment for v to w. It implements render.Renderer.
func (r *Renderer) Render(w io.Writer, v core.View) error {
	out, err := r.RenderFragment(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out+"\n")
	return err
}
