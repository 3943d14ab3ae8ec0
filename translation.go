package components

import (
	"encoding/json"
	"slices"
)

// TranslationComponent is a component whose content is a translation
// key resolved by an external localization layer. The raw key is used
// as the rendered content; resolving it is out of scope here. Argument
// components fill the key's placeholders and are projected under
// "with".
type TranslationComponent struct {
	Base
	translation string
	arguments   []Component
}

var _ Component = (*TranslationComponent)(nil)

// NewTranslation creates a translation component with the given key
// and optional argument components. Arguments are deep-cloned.
func NewTranslation(translation string, arguments ...Component) *TranslationComponent {
	t := &TranslationComponent{translation: translation}
	for _, arg := range arguments {
		t.arguments = append(t.arguments, arg.Clone())
	}
	return t
}

// Content returns the raw translation key.
func (t *TranslationComponent) Content() string {
	return t.translation
}

// Translation returns the translation key.
func (t *TranslationComponent) Translation() string {
	return t.translation
}

// Arguments returns the ordered argument components. The returned
// slice is a copy.
func (t *TranslationComponent) Arguments() []Component {
	return slices.Clone(t.arguments)
}

// Append appends a deep clone of c as the last child.
func (t *TranslationComponent) Append(c Component) Component {
	t.appendChild(c)
	return t
}

// AppendText appends a new text child with the given literal and
// optional format.
func (t *TranslationComponent) AppendText(literal string, format ...*TextFormat) Component {
	t.appendLiteral(literal, format...)
	return t
}

// Clone returns a fully independent deep copy.
func (t *TranslationComponent) Clone() Component {
	clone := &TranslationComponent{Base: t.cloneBase(), translation: t.translation}
	for _, arg := range t.arguments {
		clone.arguments = append(clone.arguments, arg.Clone())
	}
	return clone
}

// AsMap returns the component's map projection.
func (t *TranslationComponent) AsMap() map[string]any {
	m := t.baseMap()
	m["translate"] = t.translation
	if len(t.arguments) > 0 {
		with := make([]map[string]any, len(t.arguments))
		for i, arg := range t.arguments {
			with[i] = arg.AsMap()
		}
		m["with"] = with
	}
	return m
}

// MarshalJSON encodes the component as its map projection.
func (t *TranslationComponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.AsMap())
}
