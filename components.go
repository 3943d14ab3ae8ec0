// Package components models richly formatted, hierarchical text.
//
// A Component is a node in a formatted-text tree: it owns a TextFormat
// (colour, font and tri-state decoration toggles), optional interaction
// metadata (insertion text, click and hover events) and an ordered list
// of child components. Children extend or override the formatting of
// their parent. Flatten resolves that inheritance into a flat sequence
// of self-contained nodes, LegacyString encodes the result as a single
// marker string, and AsMap projects the raw tree into a structure
// suitable for any external serialization format.
//
// Component trees are not safe for concurrent mutation; a tree should
// be owned by a single logical owner at a time, and handed across
// goroutines only after a Clone.
package components

import (
	"errors"
	"reflect"
	"slices"
)

// ErrNilFormat is returned when a component's text format is set to nil.
// Per-attribute setters accept nil to clear an attribute; replacing the
// format object itself with nothing is a programming error.
var ErrNilFormat = errors.New("components: nil text format")

// Component is the interface all formatted-text components implement.
type Component interface {
	// Content returns the literal rendered text of this node alone,
	// ignoring formatting and children.
	Content() string

	// Format returns the component's own text format. The component
	// owns it exclusively; it is never shared between two components.
	Format() *TextFormat
	// SetFormat replaces the text format with a copy of f.
	// Passing nil returns ErrNilFormat.
	SetFormat(f *TextFormat) error

	// Styling, delegated to the owned TextFormat. Getters report
	// (value, ok); setters take nil to clear.
	Color() (Color, bool)
	SetColor(c Color)
	Bold() (value, ok bool)
	SetBold(b *bool)
	Italic() (value, ok bool)
	SetItalic(b *bool)
	Underlined() (value, ok bool)
	SetUnderlined(b *bool)
	Strikethrough() (value, ok bool)
	SetStrikethrough(b *bool)
	Obfuscated() (value, ok bool)
	SetObfuscated(b *bool)
	Font() (string, bool)
	SetFont(font *string)

	// Interaction metadata.
	Insertion() (string, bool)
	SetInsertion(insertion *string)
	ClickEvent() (*ClickEvent, bool)
	SetClickEvent(e *ClickEvent)
	HoverEvent() (*HoverEvent, bool)
	SetHoverEvent(e *HoverEvent)

	// Hierarchy. Siblings are children in document order; Append
	// always stores a deep clone, never the argument itself.
	Siblings() []Component
	HasSiblings() bool
	Append(c Component) Component
	AppendText(literal string, format ...*TextFormat) Component
	ClearSiblings()

	// Inheritance.
	InheritFrom(parent Component)
	Merge(other Component)

	// Projection.
	Clone() Component
	AsMap() map[string]any
}

// Base provides the shared tree and formatting state for components.
// Embed this in component structs. Concrete types implement Content,
// Clone and AsMap themselves, and wrap appendChild and appendLiteral
// with their own Append and AppendText methods.
type Base struct {
	format    TextFormat
	insertion *string
	click     *ClickEvent
	hover     *HoverEvent
	siblings  []Component
}

// Format returns the component's own text format.
func (b *Base) Format() *TextFormat {
	return &b.format
}

// SetFormat replaces the text format with a copy of f.
func (b *Base) SetFormat(f *TextFormat) error {
	if f == nil {
		return ErrNilFormat
	}
	b.format = f.Clone()
	return nil
}

// Color returns the component's colour.
func (b *Base) Color() (Color, bool) {
	return b.format.Color()
}

// SetColor sets the component's colour. Nil clears it.
func (b *Base) SetColor(c Color) {
	b.format.SetColor(c)
}

// Bold returns the bold toggle.
func (b *Base) Bold() (value, ok bool) {
	return b.format.Style(StyleBold)
}

// SetBold sets the bold toggle. Nil clears it.
func (b *Base) SetBold(v *bool) {
	b.format.SetStyle(StyleBold, v)
}

// Italic returns the italic toggle.
func (b *Base) Italic() (value, ok bool) {
	return b.format.Style(StyleItalic)
}

// SetItalic sets the italic toggle. Nil clears it.
func (b *Base) SetItalic(v *bool) {
	b.format.SetStyle(StyleItalic, v)
}

// Underlined returns the underlined toggle.
func (b *Base) Underlined() (value, ok bool) {
	return b.format.Style(StyleUnderlined)
}

// SetUnderlined sets the underlined toggle. Nil clears it.
func (b *Base) SetUnderlined(v *bool) {
	b.format.SetStyle(StyleUnderlined, v)
}

// Strikethrough returns the strikethrough toggle.
func (b *Base) Strikethrough() (value, ok bool) {
	return b.format.Style(StyleStrikethrough)
}

// SetStrikethrough sets the strikethrough toggle. Nil clears it.
func (b *Base) SetStrikethrough(v *bool) {
	b.format.SetStyle(StyleStrikethrough, v)
}

// Obfuscated returns the obfuscated toggle.
func (b *Base) Obfuscated() (value, ok bool) {
	return b.format.Style(StyleObfuscated)
}

// SetObfuscated sets the obfuscated toggle. Nil clears it.
func (b *Base) SetObfuscated(v *bool) {
	b.format.SetStyle(StyleObfuscated, v)
}

// Font returns the component's font.
func (b *Base) Font() (string, bool) {
	return b.format.Font()
}

// SetFont sets the component's font. Nil clears it.
func (b *Base) SetFont(font *string) {
	b.format.SetFont(font)
}

// Insertion returns the text inserted when the component is shift-clicked.
func (b *Base) Insertion() (string, bool) {
	if b.insertion == nil {
		return "", false
	}
	return *b.insertion, true
}

// SetInsertion sets the insertion text. Nil clears it.
func (b *Base) SetInsertion(insertion *string) {
	if insertion == nil {
		b.insertion = nil
		return
	}
	v := *insertion
	b.insertion = &v
}

// ClickEvent returns the component's click event.
func (b *Base) ClickEvent() (*ClickEvent, bool) {
	return b.click, b.click != nil
}

// SetClickEvent sets the click event. Nil clears it.
func (b *Base) SetClickEvent(e *ClickEvent) {
	b.click = e
}

// HoverEvent returns the component's hover event.
func (b *Base) HoverEvent() (*HoverEvent, bool) {
	return b.hover, b.hover != nil
}

// SetHoverEvent sets the hover event. Nil clears it.
func (b *Base) SetHoverEvent(e *HoverEvent) {
	b.hover = e
}

// Siblings returns the child components in document order.
// The returned slice is a copy; mutate the tree through Append,
// Merge and ClearSiblings only.
func (b *Base) Siblings() []Component {
	return slices.Clone(b.siblings)
}

// HasSiblings reports whether the component has any children.
func (b *Base) HasSiblings() bool {
	return len(b.siblings) > 0
}

// appendChild stores a deep clone of c as the last child.
func (b *Base) appendChild(c Component) {
	b.siblings = append(b.siblings, c.Clone())
}

// appendLiteral stores a new text child with the given literal and
// optional format as the last child.
func (b *Base) appendLiteral(literal string, format ...*TextFormat) {
	t := NewText(literal)
	if len(format) > 0 && format[0] != nil {
		t.format = format[0].Clone()
	}
	b.siblings = append(b.siblings, t)
}

// ClearSiblings removes all children. Own attributes are untouched.
func (b *Base) ClearSiblings() {
	b.siblings = nil
}

// InheritFrom fills any attribute this component does not define with
// the parent's value. Attributes already set locally are never
// overwritten. Only the receiver is mutated.
func (b *Base) InheritFrom(parent Component) {
	b.format.InheritFrom(parent.Format())
	if b.insertion == nil {
		if v, ok := parent.Insertion(); ok {
			b.insertion = &v
		}
	}
	if b.click == nil {
		if e, ok := parent.ClickEvent(); ok {
			b.click = e
		}
	}
	if b.hover == nil {
		if e, ok := parent.HoverEvent(); ok {
			b.hover = e
		}
	}
}

// Merge absorbs other's attributes into this component. Every
// attribute other defines overwrites the local value; if other has
// children, this component's children are discarded and replaced by
// deep clones of other's.
func (b *Base) Merge(other Component) {
	if other.HasSiblings() {
		b.ClearSiblings()
		for _, sibling := range other.Siblings() {
			b.appendChild(sibling)
		}
	}
	b.format.Merge(other.Format())
	if v, ok := other.Insertion(); ok {
		b.insertion = &v
	}
	if e, ok := other.ClickEvent(); ok {
		b.click = e
	}
	if e, ok := other.HoverEvent(); ok {
		b.hover = e
	}
}

// cloneBase returns a deep copy of the shared state: the format by
// value, siblings cloned recursively, events by reference (event
// values are immutable).
func (b *Base) cloneBase() Base {
	clone := Base{
		format: b.format.Clone(),
		click:  b.click,
		hover:  b.hover,
	}
	if b.insertion != nil {
		v := *b.insertion
		clone.insertion = &v
	}
	if len(b.siblings) > 0 {
		clone.siblings = make([]Component, len(b.siblings))
		for i, sibling := range b.siblings {
			clone.siblings[i] = sibling.Clone()
		}
	}
	return clone
}

// baseMap returns the shared part of the map projection: the format's
// present attributes, insertion and events where set, and the raw
// (unflattened) children under "extra".
func (b *Base) baseMap() map[string]any {
	m := b.format.AsMap()
	if b.insertion != nil {
		m["insertion"] = *b.insertion
	}
	if b.click != nil {
		m["clickEvent"] = b.click.AsMap()
	}
	if b.hover != nil {
		m["hoverEvent"] = b.hover.AsMap()
	}
	if len(b.siblings) > 0 {
		extra := make([]map[string]any, len(b.siblings))
		for i, sibling := range b.siblings {
			extra[i] = sibling.AsMap()
		}
		m["extra"] = extra
	}
	return m
}

// Equal reports whether two components are structurally equal, i.e.
// their full recursive map projections match. The concrete component
// kinds do not matter beyond what the projections show.
func Equal(a, b Component) bool {
	if a == nil || b == nil {
		return a == b
	}
	return reflect.DeepEqual(a.AsMap(), b.AsMap())
}
