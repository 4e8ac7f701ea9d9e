package input

import "sort"

// actionRegistry maps config action names to intents
// "none" unbinds a key
var actionRegistry = map[string]IntentType{
	"none":        IntentNone,
	"quit":        IntentQuit,
	"clear":       IntentClear,
	"pause":       IntentPause,
	"toggle_mute": IntentToggleMute,
}

// ActionNames returns the bindable action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
