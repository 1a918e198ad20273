package piece

import (
	tea "charm.land/bubbletea/v2"

	"admintab/board"
	nt "admintab/entity"
)

// Operator cycles through a list of options
type Operator struct {
	options  []string
	selected int // -1 when nothing is chosen yet
}

func NewOperator(options []string, selected int) Operator {
	if selected < -1 || selected >= len(options) {
		selected = -1
	}
	return Operator{
		options:  options,
		selected: selected,
	}
}

// NewOperatorFor creates an operator positioned on current, if present.
func NewOperatorFor(options []string, current string) Operator {
	for i, opt := range options {
		if opt == current {
			return NewOperator(options, i)
		}
	}
	return NewOperator(options, -1)
}

func (o Operator) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	if len(o.options) == 0 {
		return o, nil
	}

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			o.selected--
			if o.selected < 0 {
				o.selected = len(o.options) - 1
			}
			return o, o.changedCmd()
		case "right", "l":
			o.selected++
			if o.selected >= len(o.options) {
				o.selected = 0
			}
			return o, o.changedCmd()
		}
	}
	return o, nil
}

func (o Operator) changedCmd() tea.Cmd {
	return func() tea.Msg {
		return &OperatorChangedMsg{
			Selected: o.Selected(),
			Index:    o.selected,
		}
	}
}

func (o Operator) Selected() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return ""
	}
	return o.options[o.selected]
}

func (o Operator) SelectedIndex() int {
	return o.selected
}

func (o Operator) Render() string {
	if o.selected < 0 || o.selected >= len(o.options) {
		return "‹ ? ›"
	}
	return "‹ " + o.options[o.selected] + " ›"
}

func (o Operator) Value() nt.Value {
	if o.selected < 0 {
		return nt.Value{}
	}
	return nt.Text(o.Selected())
}
