package edible

import (
	"github.com/pkg/errors"

	nt "admintab/entity"
)

var (
	ErrNotEditable = errors.New("column is not editable")
	ErrNotEditing  = errors.New("row is not being edited")
	ErrBusy        = errors.New("row is being edited")
	ErrInvalid     = errors.New("row has invalid values")
	ErrNoColumn    = errors.New("no such column")
	ErrNoOption    = errors.New("value is not an option")
)

// Mode is the interaction state of a row.
type Mode int

const (
	Viewing Mode = iota
	Editing
	Adding
)

// EditRow holds the edit state of one row.
// Authoritative values are only ever read; edits go to the scratch copy.
type EditRow struct {
	key     string
	columns []nt.Column
	values  nt.Values

	mode   Mode
	column string    // active column while Editing
	old    nt.Values // snapshot at edit start
	work   nt.Values // scratch copy
}

// NewRow creates a row in Viewing mode.
func NewRow(columns []nt.Column, row nt.Row) EditRow {
	return EditRow{
		key:     row.Key,
		columns: columns,
		values:  row.Values,
	}
}

// NewDraft creates an empty row in Adding mode.
func NewDraft(columns []nt.Column) EditRow {
	return EditRow{
		columns: columns,
		mode:    Adding,
		work:    nt.Values{},
	}
}

// Key returns the row's identity, empty for a draft.
func (row EditRow) Key() string {
	return row.key
}

// Mode returns the row's interaction state.
func (row EditRow) Mode() Mode {
	return row.mode
}

// Column returns the active column, if any.
func (row EditRow) Column() (name string, ok bool) {
	return row.column, row.mode == Editing
}

// Values returns the authoritative values.
func (row EditRow) Values() nt.Values {
	return row.values
}

// Scratch returns a copy of the working values, nil in Viewing mode.
func (row EditRow) Scratch() nt.Values {
	if row.mode == Viewing {
		return nil
	}
	return row.work.Clone()
}

// Display returns the value to show for a column.
func (row EditRow) Display(name string) nt.Value {
	if row.mode == Viewing {
		return row.values.Get(name)
	}
	return row.work.Get(name)
}

// Activate starts editing a column.
func (row EditRow) Activate(name string) (EditRow, error) {

	col, err := row.lookup(name)
	if err != nil {
		return row, err
	}

	switch {
	case row.mode == Adding:
		return row, errors.Wrapf(ErrBusy, "cannot activate %s on draft", name)
	case row.mode == Editing:
		return row, errors.Wrapf(ErrBusy, "column %s is active", row.column)
	case !col.Editable:
		return row, errors.Wrapf(ErrNotEditable, "column %s", name)
	}

	row.mode = Editing
	row.column = name
	row.old = row.values.Clone()
	row.work = row.values.Clone()
	return row, nil
}

// Set writes a value into the scratch copy.
// Validation never blocks a write; it only gates Commit.
func (row EditRow) Set(name string, val nt.Value) (EditRow, error) {

	col, err := row.lookup(name)
	if err != nil {
		return row, err
	}

	if !row.writable(col) {
		return row, errors.Wrapf(ErrNotEditing, "set %s", name)
	}

	if col.Kind == nt.KindSelect && !col.HasOption(val.String()) {
		return row, errors.Wrapf(ErrNoOption, "%q for %s", val.String(), name)
	}

	row.work = row.work.Clone()
	row.work[name] = val
	return row, nil
}

// Toggle flips a checkbox column in the scratch copy.
// Toggling while viewing activates the column first.
func (row EditRow) Toggle(name string) (EditRow, error) {

	col, err := row.lookup(name)
	if err != nil {
		return row, err
	}
	if col.Kind != nt.KindCheckbox {
		return row, errors.Errorf("column %s is not a checkbox", name)
	}

	if row.mode == Viewing {
		row, err = row.Activate(name)
		if err != nil {
			return row, err
		}
	}

	return row.Set(name, nt.Bool(!row.work.Get(name).Truthy()))
}

// Valid reports whether the column accepts its current scratch value.
// Always true in Viewing mode.
func (row EditRow) Valid(name string) bool {

	if row.mode == Viewing {
		return true
	}

	col, err := row.lookup(name)
	if err != nil {
		return false
	}
	return col.Valid(row.work.Get(name), row.key)
}

// CanCommit is false when any validating column rejects its scratch value.
func (row EditRow) CanCommit() bool {

	if row.mode == Viewing {
		return false
	}

	for _, col := range row.columns {
		if !col.Valid(row.work.Get(col.Name), row.key) {
			return false
		}
	}
	return true
}

// Commit ends an edit or add, returning the event to publish.
func (row EditRow) Commit() (EditRow, Event, error) {

	if row.mode == Viewing {
		return row, nil, ErrNotEditing
	}
	if !row.CanCommit() {
		return row, nil, ErrInvalid
	}

	if row.mode == Adding {
		ev := Added{Values: row.work.Clone()}
		row.work = nt.Values{}
		return row, ev, nil
	}

	ev := Changed{Key: row.key, Old: row.old, New: row.work}
	return row.Deactivate(), ev, nil
}

// Cancel abandons an edit or add.
// Only a draft cancel produces an event.
func (row EditRow) Cancel() (EditRow, Event, error) {

	switch row.mode {
	case Adding:
		row.work = nt.Values{}
		return row, AddCancelled{}, nil
	case Editing:
		return row.Deactivate(), nil, nil
	}
	return row, nil, ErrNotEditing
}

// Remove reports the row's authoritative values for deletion.
func (row EditRow) Remove() (Event, error) {

	if row.mode != Viewing {
		return nil, errors.Wrapf(ErrBusy, "cannot remove %s", row.key)
	}
	return Removed{Key: row.key, Values: row.values}, nil
}

// Deactivate drops any in-flight edit.
func (row EditRow) Deactivate() EditRow {

	if row.mode != Editing {
		return row
	}

	row.mode = Viewing
	row.column = ""
	row.old = nil
	row.work = nil
	return row
}

// unexported

func (row EditRow) lookup(name string) (nt.Column, error) {
	for _, col := range row.columns {
		if col.Name == name {
			return col, nil
		}
	}
	return nt.Column{}, errors.Wrapf(ErrNoColumn, "%q", name)
}

// writable allows any column of a draft, the active column of an edit,
// and editable checkboxes, which toggle in place.
func (row EditRow) writable(col nt.Column) bool {
	switch row.mode {
	case Adding:
		return true
	case Editing:
		return row.column == col.Name || (col.Kind == nt.KindCheckbox && col.Editable)
	}
	return false
}

func (row EditRow) withValues(values nt.Values) EditRow {
	row.values = values
	return row
}
