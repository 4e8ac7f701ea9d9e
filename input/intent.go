package input

import "github.com/lixenwraith/contrail/trail"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C
	IntentClear      // c - drop all paths and planes
	IntentPause      // Space - freeze plane advancement
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Pointer intents, At carries the surface coordinate
	IntentPointerDown
	IntentPointerMove
	IntentPointerUp
)

var intentNames = [...]string{
	IntentNone:        "None",
	IntentQuit:        "Quit",
	IntentClear:       "Clear",
	IntentPause:       "Pause",
	IntentToggleMute:  "ToggleMute",
	IntentResize:      "Resize",
	IntentPointerDown: "PointerDown",
	IntentPointerMove: "PointerMove",
	IntentPointerUp:   "PointerUp",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "Unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	At   trail.Point // Pointer intents
	// Resize intents
	Width  int
	Height int
}

// IsPointer reports whether the intent belongs to a pointer stroke
func (i Intent) IsPointer() bool {
	return i.Type >= IntentPointerDown && i.Type <= IntentPointerUp
}
