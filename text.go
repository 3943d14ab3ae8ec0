package components

import (
	"encoding/json"
	"fmt"
)

// TextComponent is a component with plain literal content.
type TextComponent struct {
	Base
	text string
}

var _ Component = (*TextComponent)(nil)

// NewText creates a text component with the given literal content.
func NewText(text string) *TextComponent {
	return &TextComponent{text: text}
}

// Textf creates a text component with printf-style formatting.
func Textf(format string, args ...any) *TextComponent {
	return NewText(fmt.Sprintf(format, args...))
}

// Content returns the literal text.
func (t *TextComponent) Content() string {
	return t.text
}

// SetText replaces the literal text.
func (t *TextComponent) SetText(text string) *TextComponent {
	t.text = text
	return t
}

// Append appends a deep clone of c as the last child.
func (t *TextComponent) Append(c Component) Component {
	t.appendChild(c)
	return t
}

// AppendText appends a new text child with the given literal and
// optional format.
func (t *TextComponent) AppendText(literal string, format ...*TextFormat) Component {
	t.appendLiteral(literal, format...)
	return t
}

// Clone returns a fully independent deep copy.
func (t *TextComponent) Clone() Component {
	return &TextComponent{Base: t.cloneBase(), text: t.text}
}

// AsMap returns the component's map projection. Children appear raw
// under "extra"; no inheritance resolution happens here.
func (t *TextComponent) AsMap() map[string]any {
	m := t.baseMap()
	m["text"] = t.text
	return m
}

// MarshalJSON encodes the component as its map projection.
func (t *TextComponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.AsMap())
}

// --- Fluent API for building ---

// WithColor sets the colour and returns t for chaining.
func (t *TextComponent) WithColor(c Color) *TextComponent {
	t.SetColor(c)
	return t
}

// WithFont sets the font and returns t for chaining.
func (t *TextComponent) WithFont(font string) *TextComponent {
	t.SetFont(&font)
	return t
}

// WithBold sets the bold toggle and returns t for chaining.
func (t *TextComponent) WithBold(v bool) *TextComponent {
	t.SetBold(&v)
	return t
}

// WithItalic sets the italic toggle and returns t for chaining.
func (t *TextComponent) WithItalic(v bool) *TextComponent {
	t.SetItalic(&v)
	return t
}

// WithUnderlined sets the underlined toggle and returns t for chaining.
func (t *TextComponent) WithUnderlined(v bool) *TextComponent {
	t.SetUnderlined(&v)
	return t
}

// WithStrikethrough sets the strikethrough toggle and returns t for chaining.
func (t *TextComponent) WithStrikethrough(v bool) *TextComponent {
	t.SetStrikethrough(&v)
	return t
}

// WithObfuscated sets the obfuscated toggle and returns t for chaining.
func (t *TextComponent) WithObfuscated(v bool) *TextComponent {
	t.SetObfuscated(&v)
	return t
}

// WithInsertion sets the insertion text and returns t for chaining.
func (t *TextComponent) WithInsertion(insertion string) *TextComponent {
	t.SetInsertion(&insertion)
	return t
}
