package board

import (
	tea "charm.land/bubbletea/v2"

	nt "admintab/entity"
)

// Piece is an interactive control occupying one square.
type Piece interface {
	Update(msg tea.Msg) (Piece, tea.Cmd)
	Render() string
	Value() nt.Value
}

// PieceMsg is a message emitted by a piece that can be told where it sits.
type PieceMsg interface {
	IsPieceMsg()
	SetPosition(key, column string)
	Position() (key, column string)
}

// Locate stamps PieceMsgs produced by cmd with the square they came from.
func Locate(cmd tea.Cmd, key, column string) tea.Cmd {
	if cmd == nil {
		return nil
	}

	return func() tea.Msg {
		msg := cmd()
		if pm, ok := msg.(PieceMsg); ok {
			pm.SetPosition(key, column)
		}
		return msg
	}
}

// Board is a cursor over a grid of ranks (rows) and files (columns).
// Board is designed for immutable use in bubbletea/Elm architecture:
// navigation methods return a new Board with an updated position.
type Board struct {
	position position
	width    int // Number of files
	height   int // Number of ranks
}

func NewBoard(width, height int) Board {
	return Board{
		width:  width,
		height: height,
	}
}

// Position returns the current rank and file.
func (brd Board) Position() (rank, file int) {
	return brd.position.rank, brd.position.file
}

// Resize changes the grid size, keeping the cursor inside it.
func (brd Board) Resize(width, height int) Board {
	brd.width = width
	brd.height = height
	brd.position.rank = clamp(brd.position.rank, height)
	brd.position.file = clamp(brd.position.file, width)
	return brd
}

// MoveTo jumps to a square, clamped to the grid.
func (brd Board) MoveTo(rank, file int) Board {
	brd.position.rank = clamp(rank, brd.height)
	brd.position.file = clamp(file, brd.width)
	return brd
}

func (brd Board) MoveUp() Board {
	if brd.position.rank > 0 {
		brd.position.rank--
	}
	return brd
}

func (brd Board) MoveDown() Board {
	if brd.position.rank < brd.height-1 {
		brd.position.rank++
	}
	return brd
}

func (brd Board) MoveLeft() Board {
	if brd.position.file > 0 {
		brd.position.file--
	}
	return brd
}

func (brd Board) MoveRight() Board {
	if brd.position.file < brd.width-1 {
		brd.position.file++
	}
	return brd
}

// unexported

type position struct {
	rank int
	file int
}

func clamp(idx, size int) int {
	if idx >= size {
		idx = size - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
