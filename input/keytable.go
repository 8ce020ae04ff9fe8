package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Action

	// Printable rune bindings, matched case-insensitively
	Runes map[rune]Action
}

// DefaultKeyTable returns the standard bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Action{
			tcell.KeyLeft:   ActionThrustLeft,
			tcell.KeyRight:  ActionThrustRight,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
			tcell.KeyCtrlS:  ActionToggleMute,
		},
		Runes: map[rune]Action{
			'a': ActionThrustLeft,
			'd': ActionThrustRight,
			'h': ActionRotateLeft,
			'l': ActionRotateRight,
			'[': ActionWindLeft,
			']': ActionWindRight,
			'w': ActionEmit,
			' ': ActionEmit,
			'c': ActionTogglePalette,
			'r': ActionReset,
			'q': ActionQuit,
		},
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		return kt.Runes[r]
	}
	return kt.SpecialKeys[ev.Key()]
}
