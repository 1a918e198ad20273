package message

import tea "charm.land/bubbletea/v2"

// ErrorCmd returns a command reporting err
func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

// Cmd returns a command yielding msg
func Cmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}
