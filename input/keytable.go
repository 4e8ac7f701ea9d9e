package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, Esc, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyCtrlQ:  IntentQuit,
			tcell.KeyCtrlL:  IntentClear,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			'c': IntentClear,
			' ': IntentPause,
			'p': IntentPause,
			'm': IntentToggleMute,
		},
	}
}

// Lookup resolves a key event to its bound intent
func (kt *KeyTable) Lookup(key tcell.Key, r rune) IntentType {
	if key == tcell.KeyRune {
		return kt.Runes[r]
	}
	return kt.SpecialKeys[key]
}
