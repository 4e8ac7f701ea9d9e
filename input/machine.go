package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/contrail/parameter"
	"github.com/lixenwraith/contrail/trail"
)

// Machine is the input state machine
// Parses tcell events into semantic Intents, tracking primary button state
// to turn mouse reports into pointer down/move/up edges
type Machine struct {
	keyTable *KeyTable
	pressed  bool
}

// NewMachine creates a new input machine; nil uses the default key table
func NewMachine(keys *KeyTable) *Machine {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Machine{keyTable: keys}
}

// Pressed reports whether the primary button is held
func (m *Machine) Pressed() bool {
	return m.pressed
}

// Process parses a tcell event into an Intent
// Returns IntentNone for events with no meaning
func (m *Machine) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Intent{Type: m.keyTable.Lookup(ev.Key(), ev.Rune())}
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		w, h := ev.Size()
		return Intent{Type: IntentResize, Width: w, Height: h}
	}
	return Intent{}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) Intent {
	x, y := ev.Position()
	at := CellToSurface(x, y)
	down := ev.Buttons()&tcell.Button1 != 0

	switch {
	case down && !m.pressed:
		m.pressed = true
		return Intent{Type: IntentPointerDown, At: at}
	case down && m.pressed:
		return Intent{Type: IntentPointerMove, At: at}
	case !down && m.pressed:
		m.pressed = false
		return Intent{Type: IntentPointerUp, At: at}
	}
	// Hover without a button
	return Intent{}
}

// CellToSurface maps a terminal cell to the surface point at its centre
func CellToSurface(x, y int) trail.Point {
	return trail.Pt(
		(float64(x)+0.5)*parameter.CellWidth,
		(float64(y)+0.5)*parameter.CellHeight,
	)
}
