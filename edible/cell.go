package edible

import nt "admintab/entity"

// Control is the kind of control a cell renders as.
type Control int

const (
	ShowText Control = iota
	TextInput
	Toggle
	Choice
)

// Cell is what a row shows for one column.
type Cell struct {
	Value   nt.Value
	Control Control
	Options []string
	Invalid bool
}

// Cell applies the per-cell rendering rule for a column.
func (row EditRow) Cell(name string) Cell {

	col, err := row.lookup(name)
	if err != nil {
		return Cell{}
	}

	cell := Cell{Value: row.Display(name)}

	switch {
	case col.Kind == nt.KindCheckbox:
		cell.Control = Toggle
	case !row.inputShown(name):
		cell.Control = ShowText
	case col.Kind == nt.KindSelect:
		cell.Control = Choice
		cell.Options = col.Options
	default:
		cell.Control = TextInput
		cell.Invalid = !row.Valid(name)
	}

	return cell
}

// Action is a row-level action.
type Action int

const (
	Confirm Action = iota
	Dismiss
	Delete
)

func (act Action) String() string {
	switch act {
	case Confirm:
		return "Done"
	case Dismiss:
		return "Cancel"
	case Delete:
		return "Delete"
	}
	return "?"
}

// ActionState is an action and whether it can be taken.
type ActionState struct {
	Action   Action
	Disabled bool
}

// Actions lists the actions offered in the row's action column.
func (row EditRow) Actions() []ActionState {

	if row.mode == Viewing {
		return []ActionState{{Action: Delete}}
	}

	return []ActionState{
		{Action: Confirm, Disabled: !row.CanCommit()},
		{Action: Dismiss},
	}
}

func (row EditRow) inputShown(name string) bool {
	switch row.mode {
	case Adding:
		return true
	case Editing:
		return row.column == name
	}
	return false
}
