// Package render defines the interface for writing a built view in an output
// format without page markup.
package render

import (
	"io"

	"github.com/offgrid/almanac/core"
)

// Renderer writes a view to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, v core.View) error
}
