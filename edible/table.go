package edible

import (
	"github.com/pkg/errors"

	nt "admintab/entity"
)

// DraftKey addresses the new-row draft.
const DraftKey = ""

var ErrUnknownRow = errors.New("no such row")

// Active identifies the single row permitted to be in edit mode.
type Active struct {
	key string
	ok  bool
}

// NoneActive is the "no row active" state.
func NoneActive() Active {
	return Active{}
}

// ActiveKey is the "row with key active" state.
func ActiveKey(key string) Active {
	return Active{key: key, ok: true}
}

// Key returns the active row key, if any.
func (act Active) Key() (key string, ok bool) {
	return act.key, act.ok
}

// EditTable routes edit events for a list of rows and remembers which
// one, if any, is active. It never mutates row data.
type EditTable struct {
	columns  []nt.Column
	rows     []EditRow
	draft    EditRow
	adding   bool
	active   Active
	listener Listener
}

// New creates an editable table.
// A nil listener is replaced with NopListener.
func New(columns []nt.Column, rows []nt.Row, lsn Listener) (tbl EditTable, err error) {

	if lsn == nil {
		lsn = NopListener{}
	}

	tbl = EditTable{
		columns:  columns,
		draft:    NewDraft(columns),
		listener: lsn,
	}

	tbl, err = tbl.SetRows(rows)
	return
}

// Columns returns the column descriptors.
func (tbl EditTable) Columns() []nt.Column {
	return tbl.columns
}

// Headers returns the column headers followed by "Actions".
func (tbl EditTable) Headers() []string {

	headers := make([]string, 0, len(tbl.columns)+1)
	for _, col := range tbl.columns {
		headers = append(headers, col.Header)
	}
	return append(headers, "Actions")
}

// Rows returns the data rows in consumer order.
func (tbl EditTable) Rows() []EditRow {
	return tbl.rows
}

// Row returns the row with key, or the draft for DraftKey.
func (tbl EditTable) Row(key string) (row EditRow, ok bool) {

	if key == DraftKey {
		return tbl.draft, tbl.adding
	}

	idx := tbl.index(key)
	if idx < 0 {
		return EditRow{}, false
	}
	return tbl.rows[idx], true
}

// Adding reports whether the draft row is shown.
func (tbl EditTable) Adding() bool {
	return tbl.adding
}

// Active returns the active row.
func (tbl EditTable) Active() Active {
	return tbl.active
}

// SetRows replaces the rows.
// An in-flight edit survives when its row key is still present.
func (tbl EditTable) SetRows(rows []nt.Row) (EditTable, error) {

	seen := map[string]bool{}
	editRows := make([]EditRow, 0, len(rows))

	for _, row := range rows {
		if row.Key == DraftKey {
			return tbl, errors.Errorf("row has empty key")
		}
		if seen[row.Key] {
			return tbl, errors.Errorf("duplicate row key %q", row.Key)
		}
		seen[row.Key] = true

		editRow := NewRow(tbl.columns, row)
		if prior, ok := tbl.Row(row.Key); ok && prior.Mode() == Editing && tbl.isActive(row.Key) {
			editRow = prior.withValues(row.Values)
		}
		editRows = append(editRows, editRow)
	}

	if key, ok := tbl.active.Key(); ok && !seen[key] {
		tbl.active = NoneActive()
	}

	tbl.rows = editRows
	return tbl, nil
}

// SetAdding shows or hides the draft row.
// Hiding discards the draft without an event.
func (tbl EditTable) SetAdding(adding bool) EditTable {

	if adding != tbl.adding {
		tbl.draft = NewDraft(tbl.columns)
	}
	tbl.adding = adding
	return tbl
}

// Activate puts a row's column into edit mode, first reverting any
// other active row.
func (tbl EditTable) Activate(key, column string) (EditTable, error) {

	idx := tbl.index(key)
	if idx < 0 {
		return tbl, errors.Wrapf(ErrUnknownRow, "%q", key)
	}

	row, err := tbl.rows[idx].Activate(column)
	if err != nil {
		return tbl, err
	}

	tbl = tbl.deactivate()
	tbl.rows[idx] = row
	tbl.active = ActiveKey(key)
	return tbl, nil
}

// Set writes a scratch value into a row or the draft.
func (tbl EditTable) Set(key, column string, val nt.Value) (EditTable, error) {
	return tbl.apply(key, func(row EditRow) (EditRow, error) {
		return row.Set(column, val)
	})
}

// Toggle flips a checkbox in a row or the draft.
// Toggling a viewed row makes it the active row.
// On error the table is returned unchanged.
func (tbl EditTable) Toggle(key, column string) (EditTable, error) {

	row, ok := tbl.Row(key)
	if !ok {
		return tbl, errors.Wrapf(ErrUnknownRow, "%q", key)
	}

	next := tbl
	if key != DraftKey && row.Mode() == Viewing {
		var err error
		next, err = tbl.Activate(key, column)
		if err != nil {
			return tbl, err
		}
	}

	next, err := next.apply(key, func(row EditRow) (EditRow, error) {
		return row.Toggle(column)
	})
	if err != nil {
		return tbl, err
	}
	return next, nil
}

// Commit completes the edit of a row or the draft and notifies the listener.
func (tbl EditTable) Commit(key string) (EditTable, error) {

	var ev Event
	tbl, err := tbl.apply(key, func(row EditRow) (EditRow, error) {
		var err error
		row, ev, err = row.Commit()
		return row, err
	})
	if err != nil {
		return tbl, err
	}

	if key != DraftKey {
		tbl.active = NoneActive()
	}
	ev.Notify(tbl.listener)
	return tbl, nil
}

// Cancel abandons the edit of a row or the draft.
func (tbl EditTable) Cancel(key string) (EditTable, error) {

	var ev Event
	tbl, err := tbl.apply(key, func(row EditRow) (EditRow, error) {
		var err error
		row, ev, err = row.Cancel()
		return row, err
	})
	if err != nil {
		return tbl, err
	}

	if key != DraftKey {
		tbl.active = NoneActive()
	}
	if ev != nil {
		ev.Notify(tbl.listener)
	}
	return tbl, nil
}

// Remove asks the listener to delete a row.
func (tbl EditTable) Remove(key string) error {

	idx := tbl.index(key)
	if idx < 0 {
		return errors.Wrapf(ErrUnknownRow, "%q", key)
	}

	ev, err := tbl.rows[idx].Remove()
	if err != nil {
		return err
	}

	ev.Notify(tbl.listener)
	return nil
}

// Editing counts rows currently in edit mode.
func (tbl EditTable) Editing() (count int) {
	for _, row := range tbl.rows {
		if row.Mode() == Editing {
			count++
		}
	}
	return
}

// unexported

func (tbl EditTable) index(key string) int {
	for i, row := range tbl.rows {
		if row.Key() == key {
			return i
		}
	}
	return -1
}

func (tbl EditTable) isActive(key string) bool {
	active, ok := tbl.active.Key()
	return ok && active == key
}

// deactivate reverts the active row, copying rows so that earlier
// table values are left untouched.
func (tbl EditTable) deactivate() EditTable {

	tbl.rows = append([]EditRow(nil), tbl.rows...)

	key, ok := tbl.active.Key()
	if !ok {
		return tbl
	}

	if idx := tbl.index(key); idx >= 0 {
		tbl.rows[idx] = tbl.rows[idx].Deactivate()
	}
	tbl.active = NoneActive()
	return tbl
}

func (tbl EditTable) apply(key string, fn func(EditRow) (EditRow, error)) (EditTable, error) {

	if key == DraftKey {
		if !tbl.adding {
			return tbl, errors.Wrapf(ErrUnknownRow, "no draft")
		}
		row, err := fn(tbl.draft)
		if err != nil {
			return tbl, err
		}
		tbl.draft = row
		return tbl, nil
	}

	idx := tbl.index(key)
	if idx < 0 {
		return tbl, errors.Wrapf(ErrUnknownRow, "%q", key)
	}

	row, err := fn(tbl.rows[idx])
	if err != nil {
		return tbl, err
	}

	tbl.rows = append([]EditRow(nil), tbl.rows...)
	tbl.rows[idx] = row
	return tbl, nil
}
