package piece

import (
	tea "charm.land/bubbletea/v2"

	"admintab/board"
	nt "admintab/entity"
	"admintab/style"
)

// TextInput is an editable text field
type TextInput struct {
	value     []rune
	cursor    int
	maxLength int
	focused   bool
}

func NewTextInput(value string, maxLength int) TextInput {
	if maxLength <= 0 {
		maxLength = 100 // Default max length
	}
	runes := []rune(value)
	return TextInput{
		value:     runes,
		cursor:    len(runes),
		maxLength: maxLength,
		focused:   true,
	}
}

// Focus shows or hides the cursor.
func (t TextInput) Focus(focused bool) TextInput {
	t.focused = focused
	return t
}

func (t TextInput) Update(msg tea.Msg) (board.Piece, tea.Cmd) {
	oldValue := string(t.value)

	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch key := msg.String(); key {
		case "backspace":
			if t.cursor > 0 {
				t.value = append(t.value[:t.cursor-1:t.cursor-1], t.value[t.cursor:]...)
				t.cursor--
			}
		case "delete":
			if t.cursor < len(t.value) {
				t.value = append(t.value[:t.cursor:t.cursor], t.value[t.cursor+1:]...)
			}
		case "left":
			if t.cursor > 0 {
				t.cursor--
			}
		case "right":
			if t.cursor < len(t.value) {
				t.cursor++
			}
		case "home", "ctrl+a":
			t.cursor = 0
		case "end", "ctrl+e":
			t.cursor = len(t.value)
		case "space":
			t = t.insert(' ')
		default:
			// Insert character if it's a single rune and under max length
			runes := []rune(key)
			if len(runes) == 1 {
				t = t.insert(runes[0])
			}
		}
	}

	// Only send message if value changed
	if string(t.value) != oldValue {
		value := string(t.value)
		return t, func() tea.Msg {
			return &ValueChangedMsg{Value: value}
		}
	}
	return t, nil
}

func (t TextInput) Text() string {
	return string(t.value)
}

func (t TextInput) Value() nt.Value {
	return nt.Text(string(t.value))
}

func (t TextInput) Cursor() int {
	return t.cursor
}

func (t TextInput) Render() string {
	if !t.focused {
		return string(t.value)
	}

	under := " "
	after := ""
	if t.cursor < len(t.value) {
		under = string(t.value[t.cursor])
		after = string(t.value[t.cursor+1:])
	}
	return string(t.value[:t.cursor]) + style.CursorStyle.Render(under) + after
}

// unexported

func (t TextInput) insert(r rune) TextInput {
	if len(t.value) >= t.maxLength {
		return t
	}

	value := make([]rune, 0, len(t.value)+1)
	value = append(value, t.value[:t.cursor]...)
	value = append(value, r)
	value = append(value, t.value[t.cursor:]...)

	t.value = value
	t.cursor++
	return t
}
