package components

import "maps"

// ChatStyle identifies a boolean text decoration toggle.
type ChatStyle uint8

const (
	StyleBold ChatStyle = iota
	StyleItalic
	StyleUnderlined
	StyleStrikethrough
	StyleObfuscated
)

// chatStyles lists every toggle in the stable order the legacy string
// encoding emits them in.
var chatStyles = [...]ChatStyle{
	StyleBold,
	StyleItalic,
	StyleUnderlined,
	StyleStrikethrough,
	StyleObfuscated,
}

// styleData carries the projection name and legacy code of each toggle.
var styleData = [...]struct {
	name string
	code byte
}{
	{"bold", 'l'},
	{"italic", 'o'},
	{"underlined", 'n'},
	{"strikethrough", 'm'},
	{"obfuscated", 'k'},
}

// Name returns the toggle's key in map projections.
func (s ChatStyle) Name() string {
	return styleData[s].name
}

// String returns the toggle's legacy marker token.
func (s ChatStyle) String() string {
	return string([]byte{legacyMarker, styleData[s].code})
}

// TextFormat holds the style attributes of a component: an optional
// colour, an optional font name and a tri-state toggle per ChatStyle.
// A toggle absent from the set is "unset", which is distinct from an
// explicit false. The zero value is an empty format ready to use.
type TextFormat struct {
	color  Color
	font   *string
	styles map[ChatStyle]bool
}

// Color returns the format's colour.
func (f *TextFormat) Color() (Color, bool) {
	return f.color, f.color != nil
}

// SetColor sets the format's colour. Nil clears it.
func (f *TextFormat) SetColor(c Color) {
	f.color = c
}

// Font returns the format's font name.
func (f *TextFormat) Font() (string, bool) {
	if f.font == nil {
		return "", false
	}
	return *f.font, true
}

// SetFont sets the format's font name. Nil clears it.
func (f *TextFormat) SetFont(font *string) {
	if font == nil {
		f.font = nil
		return
	}
	v := *font
	f.font = &v
}

// Style returns the value of the given toggle. ok is false when the
// toggle is unset.
func (f *TextFormat) Style(style ChatStyle) (value, ok bool) {
	value, ok = f.styles[style]
	return value, ok
}

// SetStyle sets the given toggle. Nil clears it back to unset.
func (f *TextFormat) SetStyle(style ChatStyle, value *bool) {
	if value == nil {
		delete(f.styles, style)
		return
	}
	if f.styles == nil {
		f.styles = make(map[ChatStyle]bool)
	}
	f.styles[style] = *value
}

// Styles returns the toggles explicitly set to value, in the stable
// encoding order.
func (f *TextFormat) Styles(value bool) []ChatStyle {
	var out []ChatStyle
	for _, style := range chatStyles {
		if v, ok := f.styles[style]; ok && v == value {
			out = append(out, style)
		}
	}
	return out
}

// Merge overwrites this format's attributes with every attribute other
// defines. Attributes other leaves unset are untouched. Merging the
// same source twice yields the same state as once.
func (f *TextFormat) Merge(other *TextFormat) {
	if other.color != nil {
		f.color = other.color
	}
	if other.font != nil {
		v := *other.font
		f.font = &v
	}
	for style, value := range other.styles {
		v := value
		f.SetStyle(style, &v)
	}
}

// InheritFrom fills this format's unset attributes from parent.
// Attributes already set locally are never overwritten.
func (f *TextFormat) InheritFrom(parent *TextFormat) {
	if f.color == nil {
		f.color = parent.color
	}
	if f.font == nil && parent.font != nil {
		v := *parent.font
		f.font = &v
	}
	for style, value := range parent.styles {
		if _, ok := f.styles[style]; !ok {
			v := value
			f.SetStyle(style, &v)
		}
	}
}

// Clone returns an independent copy of the format.
func (f *TextFormat) Clone() TextFormat {
	return TextFormat{
		color:  f.color,
		font:   f.font,
		styles: maps.Clone(f.styles),
	}
}

// AsMap returns the format's present attributes. Unset toggles, colour
// and font are omitted entirely, never emitted as placeholders.
func (f *TextFormat) AsMap() map[string]any {
	m := make(map[string]any)
	if f.color != nil {
		m["color"] = f.color.Name()
	}
	if f.font != nil {
		m["font"] = *f.font
	}
	for style, value := range f.styles {
		m[style.Name()] = value
	}
	return m
}
