package piece

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admintab/board"
	nt "admintab/entity"
	"admintab/testkit"
)

func feed(pc board.Piece, keys ...tea.KeyPressMsg) (board.Piece, tea.Cmd) {
	var cmd tea.Cmd
	for _, key := range keys {
		pc, cmd = pc.Update(key)
	}
	return pc, cmd
}

func TestTextInput(t *testing.T) {

	var pc board.Piece = NewTextInput("ab", 5)

	pc, cmd := feed(pc, testkit.Type("c")...)
	require.NotNil(t, cmd)
	assert.Equal(t, &ValueChangedMsg{Value: "abc"}, cmd())

	pc, _ = feed(pc, testkit.Key("home"), testkit.Key("delete"), testkit.Key("end"), testkit.Key("backspace"))
	assert.Equal(t, nt.Text("b"), pc.Value())

	pc, _ = feed(pc, testkit.Key("space"))
	pc, _ = feed(pc, testkit.Type("xyzw")...)
	assert.Equal(t, nt.Text("b xyz"), pc.Value())

	_, cmd = feed(pc, testkit.Key("left"))
	assert.Nil(t, cmd)

	orig := NewTextInput("héllo", 10)
	edited, _ := feed(orig, testkit.Key("backspace"))
	assert.Equal(t, "héll", edited.(TextInput).Text())
	assert.Equal(t, "héllo", orig.Text())
	assert.Equal(t, "héllo", orig.Focus(false).Render())
}

func TestCheckbox(t *testing.T) {

	var pc board.Piece = NewCheckbox(false)
	assert.Equal(t, "[ ]", pc.Render())

	pc, cmd := feed(pc, testkit.Key("space"))
	assert.Equal(t, "[x]", pc.Render())
	assert.Equal(t, nt.Bool(true), pc.Value())
	assert.Equal(t, &CheckedMsg{Checked: true}, cmd())

	pc, _ = feed(pc, testkit.Key("t"))
	assert.Equal(t, nt.Bool(false), pc.Value())
}

func TestOperator(t *testing.T) {

	var pc board.Piece = NewOperatorFor([]string{"updater", "builder"}, "")
	assert.True(t, pc.Value().Absent())

	pc, cmd := feed(pc, testkit.Key("right"))
	assert.Equal(t, nt.Text("updater"), pc.Value())
	assert.Equal(t, &OperatorChangedMsg{Selected: "updater", Index: 0}, cmd())

	pc, _ = feed(pc, testkit.Key("left"))
	assert.Equal(t, nt.Text("builder"), pc.Value())

	pc = NewOperatorFor([]string{"updater", "builder"}, "builder")
	assert.Equal(t, "‹ builder ›", pc.Render())
}

func TestButton(t *testing.T) {

	btn := NewButton("Done")
	assert.Equal(t, "[Done]", btn.Render())
	assert.False(t, btn.Disabled())
	assert.True(t, btn.Disable(true).Disabled())
	assert.False(t, btn.Disabled())
}

func TestLabel(t *testing.T) {

	lbl := NewLabel("Name", 6)
	assert.Equal(t, "Name  ", lbl.Render())
	assert.Equal(t, "Name", lbl.Text())

	assert.Equal(t, "Account", NewLabel("Account", 3).Render())
}

func TestLocatedPosition(t *testing.T) {

	cmd := board.Locate(func() tea.Msg { return &CheckedMsg{Checked: true} }, "a1", "active")

	msg, ok := cmd().(board.PieceMsg)
	require.True(t, ok)

	key, column := msg.Position()
	assert.Equal(t, "a1", key)
	assert.Equal(t, "active", column)
}
