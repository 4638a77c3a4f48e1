package html

import "github.com/PuerkitoBio/goquery"

// State records whether a mount still shows its authored placeholder or
// already holds rendered content.
type State string

const (
	StatePlaceholder State = "placeholder"
	StatePopulated   State = "populated"
)

// Attributes the renderer reads and writes on page markup.
const (
	attrState    = "data-state"
	attrRendered = "data-rendered"
	attrSlot     = "data-slot"
	attrMount    = "data-mount"
)

// Slots inside a motivation mount.
const (
	SlotMessage = "message"
	SlotHistory = "history"
)

// Mount is a region of a page the renderer writes into. A nil *Mount is an
// absent region and every method on it is a no-op.
type Mount struct {
	sel *goquery.Selection
}

// FindMount returns the first element of doc matching selector, or nil when
// the page has no such region.
func FindMount(doc *goquery.Document, selector string) *Mount {
	if doc == nil || selector == "" {
		return nil
	}
	return NewMount(doc.Find(selector))
}

// NewMount wraps the first node of sel. It returns nil for an empty selection.
func NewMount(sel *goquery.Selection) *Mount {
	if sel == nil || sel.Length() == 0 {
		return nil
	}
	return &Mount{sel: sel.First()}
}

// State reports the mount's state. Markup without a data-state attribute is
// treated as a placeholder.
func (m *Mount) State() State {
	if m == nil {
		return ""
	}
	if State(m.sel.AttrOr(attrState, "")) == StatePopulated {
		return StatePopulated
	}
	return StatePlaceholder
}

// Slot returns the child region marked data-slot="name", or nil.
func (m *Mount) Slot(name string) *Mount {
	if m == nil {
		return nil
	}
	return NewMount(m.sel.Find("[" + attrSlot + "=\"" + name + "\"]"))
}

// Selection exposes the underlying node for callers that inspect output.
func (m *Mount) Selection() *goquery.Selection {
	if m == nil {
		return nil
	}
	return m.sel
}

// Text returns the mount's text content.
func (m *Mount) Text() string {
	if m == nil {
		return ""
	}
	return m.sel.Text()
}

// clear removes what the renderer owns: all children of a placeholder mount,
// or only previously rendered children of a populated one. Mounts nested in
// the region survive and are moved to its end.
func (m *Mount) clear() {
	if m.State() == StatePlaceholder {
		nested := m.detachNested()
		m.sel.Empty()
		m.sel.AppendSelection(nested)
		return
	}
	m.sel.ChildrenFiltered("[" + attrRendered + "]").Remove()
}

// showPlaceholder replaces the mount contents with html and leaves the mount
// in placeholder state so the next render clears it. Nested mounts are kept.
func (m *Mount) showPlaceholder(html string) {
	nested := m.detachNested()
	m.sel.SetHtml(html)
	m.sel.AppendSelection(nested)
	m.sel.SetAttr(attrState, string(StatePlaceholder))
}

// detachNested removes the outermost [data-mount] descendants from the tree
// and returns them.
func (m *Mount) detachNested() *goquery.Selection {
	nested := m.sel.Find("[" + attrMount + "]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.ParentsUntilSelection(m.sel).Filter("["+attrMount+"]").Length() == 0
	})
	return nested.Remove()
}

func (m *Mount) prepend(html string) {
	m.sel.PrependHtml(html)
}

func (m *Mount) append(html string) {
	m.sel.AppendHtml(html)
}

func (m *Mount) replace(html string) {
	m.sel.SetHtml(html)
}

func (m *Mount) setText(s string) {
	m.sel.SetText(s)
}

func (m *Mount) markPopulated() {
	m.sel.SetAttr(attrState, string(StatePopulated))
}
