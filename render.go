package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderANSI renders the tree rooted at c as an ANSI-styled string for
// terminal output. Inheritance is resolved the same way as for
// LegacyString. Fonts and interaction metadata have no terminal
// representation and are dropped; obfuscated text is approximated with
// blink.
func RenderANSI(c Component) string {
	var sb strings.Builder
	for _, node := range Flatten(c) {
		style := lipgloss.NewStyle()
		format := node.Format()
		if color, ok := format.Color(); ok {
			style = style.Foreground(lipgloss.Color("#" + color.Hex()))
		}
		if v, ok := format.Style(StyleBold); ok && v {
			style = style.Bold(true)
		}
		if v, ok := format.Style(StyleItalic); ok && v {
			style = style.Italic(true)
		}
		if v, ok := format.Style(StyleUnderlined); ok && v {
			style = style.Underline(true)
		}
		if v, ok := format.Style(StyleStrikethrough); ok && v {
			style = style.Strikethrough(true)
		}
		if v, ok := format.Style(StyleObfuscated); ok && v {
			style = style.Blink(true)
		}
		sb.WriteString(style.Render(node.Content()))
	}
	return sb.String()
}
