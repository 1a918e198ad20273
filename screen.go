package admintab

// Screen indicates which screen is currently displayed
type Screen int

const (
	AccountsScreen Screen = iota
	EditorScreen
)

// Route names the screen to open on start, and the account for the editor.
type Route struct {
	Screen  Screen
	Account string
}

// returnTo names the accounts screen in DoneMsg
const returnTo = "accounts"
