// Package terminal renders views as ANSI-colored cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/offgrid/almanac/core"
)

const defaultWidth = 100

// Renderer pretty-prints a view as cards to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the latest entry in full and the history as one-line cards.
func (r *Renderer) Render(w io.Writer, v core.View) error {
	width := r.termWidth()

	if v.Latest == nil {
		fmt.Fprintln(w, styleMeta.Render(core.EmptyText(v.Kind)))
		return nil
	}

	writeLatest(w, v.Kind, *v.Latest, width)

	if len(v.History) > 0 {
		writeSeparator(w, width)
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+badge(v.Kind, fmt.Sprintf("HISTORY (%d)", len(v.History))))
		for _, e := range v.History {
			writeCard(w, v.Kind, e, width)
		}
	}

	fmt.Fprintln(w)
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

// writeLatest renders the full latest entry: heading, linked news, body,
// excerpt and sources.
func writeLatest(w io.Writer, kind core.Kind, e core.Entry, width int) {
	contentWidth := max(width-4, 40)

	fmt.Fprintln(w, " "+badge(kind, "LATEST")+"    "+styleMeta.Render(e.LongDate))
	if e.Title != "" {
		fmt.Fprintln(w, " "+styleTitle.Render(e.Title))
	}

	if n := e.Linked; n != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  "+styleLink.Render(n.Title)+"  "+styleMeta.Render(n.SourceName+"  "+n.Published))
		fmt.Fprintln(w, "  "+styleMeta.Render(n.Link))
		if n.Summary != "" {
			fmt.Fprintln(w, "  "+styleMeta.Render(truncate(n.Summary, contentWidth)))
		}
	}

	fmt.Fprintln(w)
	body := e.Body
	if kind == core.KindMotivation {
		body = styleQuote.Render(`"` + body + `"`)
	}
	fmt.Fprintln(w, indent(lipgloss.NewStyle().Width(contentWidth).Render(body), "  "))

	if e.Excerpt != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  "+styleExcerpt.Render(truncate(e.Excerpt, contentWidth)))
	}

	if len(e.Sources) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, " "+styleMeta.Render("SOURCES"))
		for _, s := range e.Sources {
			line := styleLink.Render(s.Title) + "  " + styleMeta.Render(s.Source+"  "+s.Date)
			fmt.Fprintln(w, "  • "+line)
		}
	}
}

// writeCard renders one history entry on a single line.
func writeCard(w io.Writer, kind core.Kind, e core.Entry, width int) {
	contentWidth := max(width-4, 40)

	text := e.Excerpt
	if text == "" {
		text = e.Body
	}
	if kind == core.KindMotivation {
		text = `"` + text + `"`
	}

	line := styleMeta.Render(e.Date) + "  "
	if e.Title != "" {
		line += styleTitle.Render(e.Title) + "  "
	}
	line += truncate(text, contentWidth-lipgloss.Width(line))
	fmt.Fprintln(w, "  "+line)
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

func badge(kind core.Kind, label string) string {
	switch kind {
	case core.KindMotivation:
		return styleMotivationBadge.Render(label)
	default:
		return styleReflectionBadge.Render(label)
	}
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}

// truncate shortens text to maxWidth, appending "..." if needed.
// Multi-line text is reduced to the first line.
func truncate(s string, maxWidth int) string {
	if maxWidth < 4 {
		maxWidth = 4
	}
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if ansi.StringWidth(s) <= maxWidth {
		return s
	}
	return ansi.Truncate(s, maxWidth, "...")
}
