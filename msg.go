package admintab

import nt "admintab/entity"

// operatorMsg carries the identity of who is at the keyboard
type operatorMsg struct {
	operator string
}

// accountsMsg carries freshly loaded accounts
type accountsMsg struct {
	accounts []nt.Account
}
