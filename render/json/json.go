// Package json renders views as JSON (serializes the view model as-is).
package json

import (
	"encoding/json"
	"io"

	"github.com/offgrid/almanac/core"
)

// Renderer renders a view to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// Render writes v as a single JSON document followed by a newline.
func (r *Renderer) Render(w io.Writer, v core.View) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
