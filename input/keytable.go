package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions. Runes and special keys live
// in separate maps because tcell reports them on different event
// fields.
type KeyTable struct {
	Runes   map[rune]Action
	Special map[tcell.Key]Action
}

// DefaultKeyTable returns the built-in bindings: arrows plus vi-style
// h/l/j, z/x for rotation, q or ESC to quit.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Runes: map[rune]Action{
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'j': ActionDrop,
			' ': ActionDrop,
			'z': ActionRotateCCW,
			'x': ActionRotateCW,
			'q': ActionQuit,
		},
		Special: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
			tcell.KeyDown:   ActionDrop,
			tcell.KeyUp:     ActionRotateCW,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
		},
	}
}

// Merge overlays a sparse override table onto this one. Only keys
// present in the override change.
func (kt *KeyTable) Merge(override *KeyTable) {
	if override == nil {
		return
	}
	for r, a := range override.Runes {
		kt.Runes[r] = a
	}
	for k, a := range override.Special {
		kt.Special[k] = a
	}
}
