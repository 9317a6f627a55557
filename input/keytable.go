package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys to handheld buttons
type KeyTable struct {
	// Special keys (arrows, Enter, Backspace)
	Keys map[tcell.Key]Button

	// Rune bindings, matched case-insensitively
	Runes map[rune]Button

	// Keys that request loop exit
	QuitKeys map[tcell.Key]struct{}
}

// DefaultKeyTable returns the default bindings
// Arrows and hjkl move, x/space is A, z is B, s/a are X/Y, q/w are L/R
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Button{
			tcell.KeyLeft:       ButtonLeft,
			tcell.KeyRight:      ButtonRight,
			tcell.KeyUp:         ButtonUp,
			tcell.KeyDown:       ButtonDown,
			tcell.KeyEnter:      ButtonStart,
			tcell.KeyBackspace:  ButtonSelect,
			tcell.KeyBackspace2: ButtonSelect,
		},
		Runes: map[rune]Button{
			'h': ButtonLeft,
			'l': ButtonRight,
			'k': ButtonUp,
			'j': ButtonDown,
			'x': ButtonA,
			' ': ButtonA,
			'z': ButtonB,
			's': ButtonX,
			'a': ButtonY,
			'q': ButtonL,
			'w': ButtonR,
		},
		QuitKeys: map[tcell.Key]struct{}{
			tcell.KeyEscape: {},
			tcell.KeyCtrlC:  {},
			tcell.KeyCtrlQ:  {},
		},
	}
}

// Lookup resolves a key event to a button, ok is false for unbound keys
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Button, bool) {
	if ev.Key() == tcell.KeyRune {
		b, ok := kt.Runes[unicode.ToLower(ev.Rune())]
		return b, ok
	}
	b, ok := kt.Keys[ev.Key()]
	return b, ok
}

// IsQuit reports whether the event requests exit
func (kt *KeyTable) IsQuit(ev *tcell.EventKey) bool {
	_, ok := kt.QuitKeys[ev.Key()]
	return ok
}
