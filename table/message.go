package table

import nt "admintab/entity"

type TableMsg interface {
	isTableMsg()
}

func (SizeMsg) isTableMsg()   {}
func (RowsMsg) isTableMsg()   {}
func (AddingMsg) isTableMsg() {}

// SizeMsg sets the panel's size.
type SizeMsg struct {
	Width  int
	Height int
}

// RowsMsg replaces the rows shown.
type RowsMsg struct {
	Rows []nt.Row
}

// AddingMsg shows or hides the new-row draft.
type AddingMsg struct {
	Adding bool
}
