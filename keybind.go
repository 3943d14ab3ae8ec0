package components

import "encoding/json"

// KeybindComponent is a component rendered as the key currently bound
// to an action, e.g. "key.jump". The raw keybind identifier is used as
// the content; resolving the actual key is up to the consumer.
type KeybindComponent struct {
	Base
	keybind string
}

var _ Component = (*KeybindComponent)(nil)

// NewKeybind creates a keybind component with the given identifier.
func NewKeybind(keybind string) *KeybindComponent {
	return &KeybindComponent{keybind: keybind}
}

// Content returns the raw keybind identifier.
func (k *KeybindComponent) Content() string {
	return k.keybind
}

// Keybind returns the keybind identifier.
func (k *KeybindComponent) Keybind() string {
	return k.keybind
}

// Append appends a deep clone of c as the last child.
func (k *KeybindComponent) Append(c Component) Component {
	k.appendChild(c)
	return k
}

// AppendText appends a new text child with the given literal and
// optional format.
func (k *KeybindComponent) AppendText(literal string, format ...*TextFormat) Component {
	k.appendLiteral(literal, format...)
	return k
}

// Clone returns a fully independent deep copy.
func (k *KeybindComponent) Clone() Component {
	return &KeybindComponent{Base: k.cloneBase(), keybind: k.keybind}
}

// AsMap returns the component's map projection.
func (k *KeybindComponent) AsMap() map[string]any {
	m := k.baseMap()
	m["keybind"] = k.keybind
	return m
}

// MarshalJSON encodes the component as its map projection.
func (k *KeybindComponent) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.AsMap())
}
