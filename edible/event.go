package edible

import nt "admintab/entity"

// Listener receives table events.
// Embed NopListener to handle only some of them.
type Listener interface {
	// RowAdded is called with the full draft when an add is committed.
	RowAdded(values nt.Values)
	// AddCancelled is called when the draft is abandoned.
	AddCancelled()
	// RowChanged is called with full before and after mappings on commit.
	RowChanged(key string, old, new nt.Values)
	// RowRemoved is called with the authoritative values of a row to delete.
	RowRemoved(key string, values nt.Values)
}

// NopListener ignores every event.
type NopListener struct{}

func (NopListener) RowAdded(nt.Values)                      {}
func (NopListener) AddCancelled()                           {}
func (NopListener) RowChanged(string, nt.Values, nt.Values) {}
func (NopListener) RowRemoved(string, nt.Values)            {}

// Event is produced by a row transition for delivery to a Listener.
type Event interface {
	Notify(lsn Listener)
}

type Added struct {
	Values nt.Values
}

type AddCancelled struct{}

type Changed struct {
	Key string
	Old nt.Values
	New nt.Values
}

type Removed struct {
	Key    string
	Values nt.Values
}

func (ev Added) Notify(lsn Listener)        { lsn.RowAdded(ev.Values) }
func (ev AddCancelled) Notify(lsn Listener) { lsn.AddCancelled() }
func (ev Changed) Notify(lsn Listener)      { lsn.RowChanged(ev.Key, ev.Old, ev.New) }
func (ev Removed) Notify(lsn Listener)      { lsn.RowRemoved(ev.Key, ev.Values) }
