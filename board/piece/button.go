package piece

import (
	"admintab/style"
)

// Button shows an action, muted when it cannot be taken
type Button struct {
	label    string
	disabled bool
}

func NewButton(label string) Button {
	return Button{label: label}
}

// Disable returns a copy of the button shown as unavailable.
func (b Button) Disable(disabled bool) Button {
	b.disabled = disabled
	return b
}

func (b Button) Label() string {
	return b.label
}

func (b Button) Disabled() bool {
	return b.disabled
}

func (b Button) Render() string {
	if b.disabled {
		return style.MutedStyle.Render("[" + b.label + "]")
	}
	return "[" + b.label + "]"
}
