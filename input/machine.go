package input

import "github.com/gdamore/tcell/v2"

// Machine translates tcell key events into game actions through a
// (possibly user-overridden) key table.
type Machine struct {
	keyTable *KeyTable
}

// NewMachine creates a machine using the given key table, or the
// defaults when nil.
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// Map resolves a key event to an action. Unbound keys map to
// ActionNone.
func (m *Machine) Map(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return m.keyTable.Runes[ev.Rune()]
	}
	return m.keyTable.Special[ev.Key()]
}
