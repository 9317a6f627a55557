package input

import (
	"fmt"
	"maps"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// unbound marks an override entry that removes the key from the base table
const unbound Button = 0

// Rune aliases for keys that can't be bare config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
	"period":    '.',
	"comma":     ',',
}

// keysByName resolves lowercased tcell key names such as "left" or "enter"
var keysByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyBindings parses key name → button name pairs into a sparse override table
// Keys are single characters, rune aliases or terminal key names; the button
// "none" unbinds the key
func LoadKeyBindings(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Button),
		Runes: make(map[rune]Button),
	}

	for keyStr, buttonName := range bindings {
		b, err := resolveButton(buttonName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = b
			continue
		}
		k, ok := keysByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("unknown key name: %q", keyStr)
		}
		kt.Keys[k] = b
	}

	return kt, nil
}

// resolveRune converts a config key to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

func resolveButton(name string) (Button, error) {
	name = strings.TrimSpace(name)
	if strings.EqualFold(name, "none") {
		return unbound, nil
	}
	return ParseButton(name)
}

// MergeKeyTable returns a new table with base bindings overridden by override
// Override entries bound to "none" delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeBindings(result.Keys, override.Keys)
	mergeBindings(result.Runes, override.Runes)
	return result
}

func mergeBindings[K comparable](base, override map[K]Button) {
	for k, b := range override {
		if b == unbound {
			delete(base, k)
		} else {
			base[k] = b
		}
	}
}

// Clone returns a deep copy of the table
func (kt *KeyTable) Clone() *KeyTable {
	c := &KeyTable{
		Keys:     maps.Clone(kt.Keys),
		Runes:    maps.Clone(kt.Runes),
		QuitKeys: maps.Clone(kt.QuitKeys),
	}
	if c.Keys == nil {
		c.Keys = make(map[tcell.Key]Button)
	}
	if c.Runes == nil {
		c.Runes = make(map[rune]Button)
	}
	return c
}
