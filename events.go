package components

import "maps"

// ClickAction identifies what happens when a component is clicked.
type ClickAction uint8

const (
	OpenURL ClickAction = iota
	OpenFile
	RunCommand
	SuggestCommand
	ChangePage
	CopyToClipboard
)

var clickActionNames = [...]string{
	"open_url",
	"open_file",
	"run_command",
	"suggest_command",
	"change_page",
	"copy_to_clipboard",
}

// String returns the action's projection name, e.g. "open_url".
func (a ClickAction) String() string {
	return clickActionNames[a]
}

// ClickEvent describes an action run when a component is clicked.
// Values are immutable once constructed; components share them by
// reference when cloned.
type ClickEvent struct {
	action ClickAction
	value  string
}

// NewClickEvent returns a click event with the given action and value.
func NewClickEvent(action ClickAction, value string) *ClickEvent {
	return &ClickEvent{action: action, value: value}
}

// Action returns the event's action.
func (e *ClickEvent) Action() ClickAction {
	return e.action
}

// Value returns the event's value, e.g. the URL or command.
func (e *ClickEvent) Value() string {
	return e.value
}

// AsMap returns the event's map projection.
func (e *ClickEvent) AsMap() map[string]any {
	return map[string]any{
		"action": e.action.String(),
		"value":  e.value,
	}
}

// HoverAction identifies what a hover event reveals.
type HoverAction uint8

const (
	ShowText HoverAction = iota
	ShowItem
	ShowEntity
)

var hoverActionNames = [...]string{
	"show_text",
	"show_item",
	"show_entity",
}

// String returns the action's projection name, e.g. "show_text".
func (a HoverAction) String() string {
	return hoverActionNames[a]
}

// HoverEvent describes content revealed when a component is hovered.
// Values are immutable once constructed; components share them by
// reference when cloned.
type HoverEvent struct {
	action   HoverAction
	contents map[string]any
}

// NewHoverEvent returns a hover event with the given action and
// already-projected contents. The contents must not be modified after
// the call.
func NewHoverEvent(action HoverAction, contents map[string]any) *HoverEvent {
	return &HoverEvent{action: action, contents: maps.Clone(contents)}
}

// ShowTextEvent returns a hover event revealing the given component.
// The component's projection is taken at call time; later mutation of
// c does not affect the event.
func ShowTextEvent(c Component) *HoverEvent {
	return &HoverEvent{action: ShowText, contents: c.AsMap()}
}

// Action returns the event's action.
func (e *HoverEvent) Action() HoverAction {
	return e.action
}

// AsMap returns the event's map projection.
func (e *HoverEvent) AsMap() map[string]any {
	return map[string]any{
		"action":   e.action.String(),
		"contents": e.contents,
	}
}
