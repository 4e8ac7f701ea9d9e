package input

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// ErrUnknownBinding is returned for unknown action or key names
var ErrUnknownBinding = errors.New("unknown key binding")

// Rune aliases for keys that can't be written as a bare single char in TOML
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ApplyBindings overrides kt with key -> action pairs from config
// Keys are single runes, rune aliases, or tcell key names ("Esc", "Ctrl-L")
func (kt *KeyTable) ApplyBindings(bindings map[string]string) error {
	// Deterministic order so errors are reproducible
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, keyName := range keys {
		action := bindings[keyName]
		intent, ok := actionRegistry[strings.ToLower(action)]
		if !ok {
			return errors.Wrapf(ErrUnknownBinding, "action %q for key %q (valid: %s)",
				action, keyName, strings.Join(ActionNames(), ", "))
		}
		if err := kt.bind(keyName, intent); err != nil {
			return err
		}
	}
	return nil
}

func (kt *KeyTable) bind(keyName string, intent IntentType) error {
	if r, ok := parseRune(keyName); ok {
		if intent == IntentNone {
			delete(kt.Runes, r)
		} else {
			kt.Runes[r] = intent
		}
		return nil
	}

	key, ok := parseSpecialKey(keyName)
	if !ok {
		return errors.Wrapf(ErrUnknownBinding, "key %q", keyName)
	}
	if intent == IntentNone {
		delete(kt.SpecialKeys, key)
	} else {
		kt.SpecialKeys[key] = intent
	}
	return nil
}

func parseRune(name string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(name)]; ok {
		return r, true
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		return r, true
	}
	return 0, false
}

// parseSpecialKey resolves names against tcell's key name table, case-insensitive
func parseSpecialKey(name string) (tcell.Key, bool) {
	norm := strings.ReplaceAll(strings.ToLower(name), "+", "-")
	for key, keyName := range tcell.KeyNames {
		if strings.ToLower(keyName) == norm {
			return key, true
		}
	}
	return tcell.KeyNUL, false
}
