package table

import (
	tea "charm.land/bubbletea/v2"

	nt "admintab/entity"
	"admintab/message"
)

// relay turns table events into commands for the parent.
// Shared by all copies of a Panel and drained within each Update.
type relay struct {
	cmds []tea.Cmd
}

func (rl *relay) RowAdded(values nt.Values) {
	rl.push(message.RowAddedMsg{Values: values})
}

func (rl *relay) AddCancelled() {
	rl.push(message.AddCancelledMsg{})
}

func (rl *relay) RowChanged(key string, old, new nt.Values) {
	rl.push(message.RowChangedMsg{Key: key, Old: old, New: new})
}

func (rl *relay) RowRemoved(key string, values nt.Values) {
	rl.push(message.RowRemovedMsg{Key: key, Values: values})
}

func (rl *relay) push(msg tea.Msg) {
	rl.cmds = append(rl.cmds, message.Cmd(msg))
}

func (rl *relay) drain() []tea.Cmd {
	cmds := rl.cmds
	rl.cmds = nil
	return cmds
}

// batch drops nil commands, returning a lone command as is.
func batch(cmds ...tea.Cmd) tea.Cmd {

	valid := []tea.Cmd{}
	for _, cmd := range cmds {
		if cmd != nil {
			valid = append(valid, cmd)
		}
	}

	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return tea.Batch(valid...)
}
