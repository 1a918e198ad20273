package piece

import "admintab/board"

// Ensure messages implement board.PieceMsg
var (
	_ board.PieceMsg = (*CheckedMsg)(nil)
	_ board.PieceMsg = (*OperatorChangedMsg)(nil)
	_ board.PieceMsg = (*ValueChangedMsg)(nil)
)

// CheckedMsg is sent when a checkbox is toggled
type CheckedMsg struct {
	Key     string
	Column  string
	Checked bool
}

func (CheckedMsg) IsPieceMsg() {}
func (m *CheckedMsg) SetPosition(key, column string) {
	m.Key = key
	m.Column = column
}
func (m *CheckedMsg) Position() (key, column string) {
	return m.Key, m.Column
}

// OperatorChangedMsg is sent when an option selection changes
type OperatorChangedMsg struct {
	Key      string
	Column   string
	Selected string
	Index    int
}

func (OperatorChangedMsg) IsPieceMsg() {}
func (m *OperatorChangedMsg) SetPosition(key, column string) {
	m.Key = key
	m.Column = column
}
func (m *OperatorChangedMsg) Position() (key, column string) {
	return m.Key, m.Column
}

// ValueChangedMsg is sent when a text input value changes
type ValueChangedMsg struct {
	Key    string
	Column string
	Value  string
}

func (ValueChangedMsg) IsPieceMsg() {}
func (m *ValueChangedMsg) SetPosition(key, column string) {
	m.Key = key
	m.Column = column
}
func (m *ValueChangedMsg) Position() (key, column string) {
	return m.Key, m.Column
}
