package editor

import nt "admintab/entity"

// WhoAmIMsg carries the identity query result
type WhoAmIMsg struct {
	Operator string
	Err      error
}

// AccountsMsg carries the existing account identifiers
type AccountsMsg struct {
	Accounts []string
	Err      error
}

// InfoMsg carries the lazy account lookup result
type InfoMsg struct {
	Infos []nt.Account
	Err   error
}

// SubmittedMsg carries the create or update result
type SubmittedMsg struct {
	Err error
}

// SizeMsg sets the editor's size
type SizeMsg struct {
	Width  int
	Height int
}
