package piece

import (
	tea "charm.land/bubbletea/v2"

	"admintab/board"
	nt "admintab/entity"
)

// Checkbox is a toggleable checkbox
type Checkbox struct {
	checked bool
}

func NewCheckbox(checked bool) Checkbox {
	return Checkbox{checked: checked}
}

func (c Checkbox) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if IsToggleKey(msg.String()) {
			c.checked = !c.checked
			return c, func() tea.Msg {
				return &CheckedMsg{Checked: c.checked}
			}
		}
	}
	return c, nil
}

func (c Checkbox) Checked() bool {
	return c.checked
}

func (c Checkbox) Render() string {
	if c.checked {
		return "[x]"
	}
	return "[ ]"
}

func (c Checkbox) Value() nt.Value {
	return nt.Bool(c.checked)
}

// IsToggleKey reports whether a key flips a checkbox.
func IsToggleKey(key string) bool {
	return key == "t" || key == " " || key == "space"
}
