package message

import nt "admintab/entity"

// ErrorMsg contains an error
type ErrorMsg struct {
	Err error
}

// RowAddedMsg carries a committed draft
type RowAddedMsg struct {
	Values nt.Values
}

// AddCancelledMsg signals the draft was abandoned
type AddCancelledMsg struct{}

// RowChangedMsg carries a committed edit as full before and after values
type RowChangedMsg struct {
	Key string
	Old nt.Values
	New nt.Values
}

// RowRemovedMsg asks for a row to be deleted
type RowRemovedMsg struct {
	Key    string
	Values nt.Values
}

// OpenEditorMsg asks for the account editor, empty Account for a new one
type OpenEditorMsg struct {
	Account string
}

// DoneMsg signals the editor is finished and names where to return
type DoneMsg struct {
	Return  string
	Account string
	Saved   bool
}

// ReloadMsg asks for fresh data from the service
type ReloadMsg struct{}
