package table

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/pkg/errors"

	"admintab/board"
	"admintab/board/piece"
	"admintab/edible"
	nt "admintab/entity"
	"admintab/message"
	"admintab/style"
)

// Todo: handle columns overflow

const (
	headerHeight = 2
	actionsWidth = 18
	defaultWidth = 16
)

// Panel renders an editable table and routes keys to it.
type Panel struct {
	edit  edible.EditTable
	relay *relay

	brd     board.Board
	offset  int         // First rank shown
	piece   board.Piece // Live control under the cursor, if any
	pieceAt square

	width  int
	height int
	table  *table.Table

	ctx    context.Context
	logger nt.Logger
}

type square struct {
	key    string
	column string
	mode   edible.Mode
}

// NewPanel creates a table panel.
func NewPanel(ctx context.Context, columns []nt.Column, rows []nt.Row, lgr nt.Logger) (pnl Panel, err error) {

	rl := &relay{}

	edit, err := edible.New(columns, rows, rl)
	if err != nil {
		err = errors.Wrapf(err, "failed to create table")
		return
	}

	lgt := table.New()
	style.StyleTable(lgt)

	pnl = Panel{
		edit:   edit,
		relay:  rl,
		table:  lgt,
		ctx:    ctx,
		logger: lgr,
	}
	pnl = pnl.resize()

	return
}

// Table returns the underlying edit state.
func (pnl Panel) Table() edible.EditTable {
	return pnl.edit
}

// Busy reports whether a row or the draft is being edited.
func (pnl Panel) Busy() bool {
	return pnl.edit.Adding() || pnl.edit.Editing() > 0
}

// SelectedKey returns the key of the data row under the cursor.
func (pnl Panel) SelectedKey() (key string, ok bool) {
	rank, _ := pnl.brd.Position()
	key, ok = pnl.rankKey(rank)
	if key == edible.DraftKey {
		return "", false
	}
	return
}

// Position returns the 1-based row under the cursor and the row count.
func (pnl Panel) Position() (current, total int) {
	rank, _ := pnl.brd.Position()
	total = len(pnl.edit.Rows())
	if pnl.edit.Adding() {
		rank--
	}
	if total == 0 || rank < 0 {
		return 0, total
	}
	return rank + 1, total
}

func (pnl Panel) Init() tea.Cmd {
	return nil
}

func (pnl Panel) Update(msg tea.Msg) (Panel, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		pnl.width = msg.Width
		pnl.height = msg.Height
		pnl = pnl.scroll()

	case RowsMsg:
		edit, err := pnl.edit.SetRows(msg.Rows)
		if err != nil {
			return pnl, message.ErrorCmd(err)
		}
		pnl.edit = edit
		pnl = pnl.resize().follow().focus()

	case AddingMsg:
		pnl.edit = pnl.edit.SetAdding(msg.Adding)
		pnl = pnl.resize()
		if msg.Adding {
			pnl.brd = pnl.brd.MoveTo(0, 0)
		}
		pnl = pnl.scroll().focus()

	case tea.KeyPressMsg:
		return pnl.handleKey(msg)
	}

	return pnl, nil
}

// Render renders the table.
func (pnl Panel) Render() string {

	rank, file := pnl.brd.Position()
	pnl.table.StyleFunc(style.CellStyler(rank-pnl.offset, file))

	pnl.table.Headers(pnl.headers()...)

	pnl.table.ClearRows()
	last := min(pnl.offset+pnl.pageSize(), pnl.ranks())
	for r := pnl.offset; r < last; r++ {
		key, _ := pnl.rankKey(r)
		row, _ := pnl.edit.Row(key)
		pnl.table.Row(pnl.cells(row)...)
	}

	return pnl.table.String()
}

// unexported

func (pnl Panel) handleKey(msg tea.KeyPressMsg) (Panel, tea.Cmd) {

	rank, file := pnl.brd.Position()
	key, ok := pnl.rankKey(rank)
	if !ok {
		return pnl.navigate(msg.String()), nil
	}

	row, _ := pnl.edit.Row(key)
	if row.Mode() == edible.Viewing {
		return pnl.handleViewing(msg, key, file)
	}
	return pnl.handleEditing(msg, row)
}

func (pnl Panel) handleViewing(msg tea.KeyPressMsg, key string, file int) (Panel, tea.Cmd) {

	var err error
	column, onColumn := pnl.column(file)

	switch msg.String() {
	case "enter":
		if !onColumn {
			err = pnl.edit.Remove(key)
			break
		}
		pnl.edit, err = pnl.edit.Activate(key, column.Name)

	case "t", " ", "space":
		if onColumn && column.Kind == nt.KindCheckbox {
			pnl.edit, err = pnl.edit.Toggle(key, column.Name)
		}

	case "d", "delete":
		err = pnl.edit.Remove(key)

	default:
		return pnl.navigate(msg.String()), nil
	}

	return pnl.settle(err)
}

func (pnl Panel) handleEditing(msg tea.KeyPressMsg, row edible.EditRow) (Panel, tea.Cmd) {

	var err error
	key := row.Key()

	switch msg.String() {
	case "esc":
		pnl.edit, err = pnl.edit.Cancel(key)
		return pnl.settle(err)

	case "enter":
		if !row.CanCommit() {
			return pnl, nil
		}
		pnl.edit, err = pnl.edit.Commit(key)
		return pnl.settle(err)

	case "tab":
		if row.Mode() == edible.Adding {
			pnl.brd = pnl.brd.MoveRight()
			return pnl.focus(), nil
		}

	case "shift+tab":
		if row.Mode() == edible.Adding {
			pnl.brd = pnl.brd.MoveLeft()
			return pnl.focus(), nil
		}
	}

	if pnl.piece == nil {
		return pnl, nil
	}

	pc, cmd := pnl.piece.Update(msg)
	pnl.piece = pc
	if cmd == nil {
		return pnl, nil
	}

	// apply now so a following commit sees the value
	at := pnl.pieceAt
	pnl.edit, err = pnl.edit.Set(at.key, at.column, pc.Value())
	if err != nil {
		return pnl, message.ErrorCmd(err)
	}

	return pnl, board.Locate(cmd, at.key, at.column)
}

// settle refreshes cursor and piece after a transition and flushes events.
func (pnl Panel) settle(err error) (Panel, tea.Cmd) {

	cmds := pnl.relay.drain()
	if err != nil {
		pnl.logger.Info(pnl.ctx, "edit refused", "reason", err.Error())
	}
	pnl.piece = nil

	return pnl.follow().focus(), batch(cmds...)
}

// follow puts the cursor on the active cell, if any.
func (pnl Panel) follow() Panel {

	key, ok := pnl.edit.Active().Key()
	if !ok {
		return pnl
	}

	row, _ := pnl.edit.Row(key)
	if column, ok := row.Column(); ok {
		pnl.brd = pnl.brd.MoveTo(pnl.keyRank(key), pnl.columnFile(column))
	}
	return pnl.scroll()
}

// focus builds the live control for the square under the cursor.
func (pnl Panel) focus() Panel {

	rank, file := pnl.brd.Position()
	key, ok := pnl.rankKey(rank)
	column, onColumn := pnl.column(file)
	if !ok || !onColumn {
		pnl.piece = nil
		return pnl
	}

	row, _ := pnl.edit.Row(key)
	at := square{key: key, column: column.Name, mode: row.Mode()}
	if pnl.piece != nil && at == pnl.pieceAt {
		return pnl
	}

	cell := row.Cell(column.Name)
	switch {
	case row.Mode() == edible.Viewing:
		pnl.piece = nil
	case cell.Control == edible.TextInput:
		pnl.piece = piece.NewTextInput(cell.Value.String(), column.Width)
	case cell.Control == edible.Choice:
		pnl.piece = piece.NewOperatorFor(cell.Options, cell.Value.String())
	case cell.Control == edible.Toggle && column.Editable:
		pnl.piece = piece.NewCheckbox(cell.Value.Truthy())
	default:
		pnl.piece = nil
	}
	pnl.pieceAt = at

	return pnl
}

func (pnl Panel) navigate(key string) Panel {

	pageSize := pnl.pageSize()
	rank, file := pnl.brd.Position()

	switch key {
	case "up", "k":
		pnl.brd = pnl.brd.MoveUp()
	case "down", "j":
		pnl.brd = pnl.brd.MoveDown()
	case "left", "h":
		pnl.brd = pnl.brd.MoveLeft()
	case "right", "l":
		pnl.brd = pnl.brd.MoveRight()
	case "pgup", "ctrl+u":
		pnl.brd = pnl.brd.MoveTo(rank-pageSize, file)
	case "pgdown", "ctrl+d":
		pnl.brd = pnl.brd.MoveTo(rank+pageSize, file)
	case "g":
		pnl.brd = pnl.brd.MoveTo(0, file)
	case "G":
		pnl.brd = pnl.brd.MoveTo(pnl.ranks()-1, file)
	}

	return pnl.scroll().focus()
}

// scroll adjusts offset to keep the cursor visible
func (pnl Panel) scroll() Panel {

	pageSize := pnl.pageSize()
	rank, _ := pnl.brd.Position()

	if rank < pnl.offset {
		pnl.offset = rank
	} else if rank >= pnl.offset+pageSize {
		pnl.offset = rank - pageSize + 1
	}
	if pnl.offset < 0 {
		pnl.offset = 0
	}
	return pnl
}

func (pnl Panel) resize() Panel {
	pnl.brd = pnl.brd.Resize(len(pnl.edit.Columns())+1, pnl.ranks())
	return pnl
}

// pageSize returns the number of rows that fit on panel
func (pnl Panel) pageSize() int {
	if pnl.height <= headerHeight {
		return max(pnl.ranks(), 1)
	}
	return pnl.height - headerHeight
}

// ranks counts rows including the draft
func (pnl Panel) ranks() int {
	count := len(pnl.edit.Rows())
	if pnl.edit.Adding() {
		count++
	}
	return count
}

func (pnl Panel) rankKey(rank int) (key string, ok bool) {

	if pnl.edit.Adding() {
		if rank == 0 {
			return edible.DraftKey, true
		}
		rank--
	}

	rows := pnl.edit.Rows()
	if rank < 0 || rank >= len(rows) {
		return "", false
	}
	return rows[rank].Key(), true
}

func (pnl Panel) keyRank(key string) int {

	rank := 0
	if pnl.edit.Adding() {
		if key == edible.DraftKey {
			return 0
		}
		rank++
	}

	for i, row := range pnl.edit.Rows() {
		if row.Key() == key {
			return rank + i
		}
	}
	return -1
}

func (pnl Panel) column(file int) (nt.Column, bool) {
	columns := pnl.edit.Columns()
	if file < 0 || file >= len(columns) {
		return nt.Column{}, false
	}
	return columns[file], true
}

func (pnl Panel) columnFile(name string) int {
	for i, col := range pnl.edit.Columns() {
		if col.Name == name {
			return i
		}
	}
	return 0
}

func (pnl Panel) headers() []string {

	headers := pnl.edit.Headers()
	columns := pnl.edit.Columns()

	labels := make([]string, len(headers))
	for i, header := range headers {
		width := actionsWidth
		if i < len(columns) {
			width = colWidth(columns[i])
		}
		labels[i] = piece.NewLabel(header, width+1).Render()
	}
	return labels
}

func (pnl Panel) cells(row edible.EditRow) []string {

	columns := pnl.edit.Columns()
	cells := make([]string, 0, len(columns)+1)

	for _, col := range columns {
		cells = append(cells, pnl.cell(row, col))
	}

	var buttons []string
	for _, act := range row.Actions() {
		btn := piece.NewButton(act.Action.String()).Disable(act.Disabled)
		buttons = append(buttons, btn.Render())
	}
	return append(cells, strings.Join(buttons, " "))
}

func (pnl Panel) cell(row edible.EditRow, col nt.Column) string {

	cell := row.Cell(col.Name)
	at := square{key: row.Key(), column: col.Name, mode: row.Mode()}

	var text string
	switch {
	case pnl.piece != nil && at == pnl.pieceAt:
		text = pnl.piece.Render()
	case cell.Control == edible.Toggle:
		text = piece.NewCheckbox(cell.Value.Truthy()).Render()
	case cell.Control == edible.Choice:
		text = piece.NewOperatorFor(cell.Options, cell.Value.String()).Render()
	case cell.Control == edible.TextInput:
		text = piece.NewTextInput(cell.Value.String(), col.Width).Focus(false).Render()
	default:
		text = piece.NewValue(cell.Value, nil).Render()
	}

	if cell.Invalid {
		return style.InvalidStyle.Render(truncate(text, colWidth(col)))
	}
	return truncate(text, colWidth(col))
}

// help

func colWidth(col nt.Column) int {
	if col.Width > 0 {
		return col.Width
	}
	return defaultWidth
}

func truncate(in string, width int) string {

	runes := []rune(in)
	if len(runes) <= width || strings.Contains(in, "\x1b") {
		return in
	}

	truncated := string(runes[:width-1])
	ellipsis := style.MutedStyle.Render("…")
	return truncated + ellipsis
}
