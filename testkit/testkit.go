// Package testkit provides test helpers for logging and key input.
package testkit

import (
	"context"
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
)

// Logger writes to t.Log, so output only shows on failure or with -v.
// Info messages are kept for assertions.
type Logger struct {
	T     testing.TB
	Infos []string
}

// NewLogger returns a Logger for t.
func NewLogger(t testing.TB) *Logger {
	t.Helper()
	return &Logger{T: t}
}

func (lgr *Logger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.T.Helper()
	lgr.Infos = append(lgr.Infos, msg)
	lgr.T.Log(fmt.Sprintf("INFO %s %v", msg, kv))
}

func (lgr *Logger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.T.Helper()
	lgr.T.Log(fmt.Sprintf("ERROR %s: %v %v", msg, err, kv))
}

var named = map[string]tea.KeyPressMsg{
	"enter":     {Code: tea.KeyEnter},
	"esc":       {Code: tea.KeyEscape},
	"tab":       {Code: tea.KeyTab},
	"shift+tab": {Code: tea.KeyTab, Mod: tea.ModShift},
	"backspace": {Code: tea.KeyBackspace},
	"delete":    {Code: tea.KeyDelete},
	"space":     {Code: tea.KeySpace, Text: " "},
	"up":        {Code: tea.KeyUp},
	"down":      {Code: tea.KeyDown},
	"left":      {Code: tea.KeyLeft},
	"right":     {Code: tea.KeyRight},
	"home":      {Code: tea.KeyHome},
	"end":       {Code: tea.KeyEnd},
}

// Key returns a key press for a named key or a single printable rune.
func Key(name string) tea.KeyPressMsg {
	if msg, ok := named[name]; ok {
		return msg
	}

	runes := []rune(name)
	if len(runes) != 1 {
		panic("testkit: unknown key " + name)
	}
	return tea.KeyPressMsg{Code: runes[0], Text: name}
}

// Type returns a key press per rune of text.
func Type(text string) []tea.KeyPressMsg {
	msgs := []tea.KeyPressMsg{}
	for _, r := range text {
		msgs = append(msgs, Key(string(r)))
	}
	return msgs
}
