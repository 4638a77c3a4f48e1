package html

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// body renders an entry body. Plain text is escaped and keeps its line breaks
// through CSS; Markdown is converted by goldmark.
func (r *Renderer) body(text string) (template.HTML, error) {
	if !r.Markdown {
		return template.HTML(template.HTMLEscapeString(text)), nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return "", fmt.Errorf("goldmark convert: %w", err)
	}
	return template.HTML(`<div class="prose">` + strings.TrimSpace(buf.String()) + `</div>`), nil
}
