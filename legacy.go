package components

import "strings"

// legacyMarker prefixes every colour and decoration token in the
// legacy string encoding.
const legacyMarker = '&'

// LegacyString encodes the tree rooted at c as a single string with
// inline marker tokens. Each flattened node emits its colour token (a
// palette token, or for RGB colours "&x" followed by the six hex
// digits each prefixed with "&"), then a token per decoration toggle
// set to true, then its literal content. The encoding is lossy and
// one-way: font, insertion and events are dropped, and no decoder is
// defined.
func LegacyString(c Component) string {
	var sb strings.Builder
	for _, node := range Flatten(c) {
		format := node.Format()
		if color, ok := format.Color(); ok {
			if color.IsDefault() {
				sb.WriteString(color.String())
			} else {
				sb.WriteByte(legacyMarker)
				sb.WriteByte('x')
				for _, digit := range color.Hex() {
					sb.WriteByte(legacyMarker)
					sb.WriteRune(digit)
				}
			}
		}
		for _, style := range format.Styles(true) {
			sb.WriteString(style.String())
		}
		sb.WriteString(node.Content())
	}
	return sb.String()
}
