package hotkey

import (
	"fmt"
	"strings"

	"golang.design/x/hotkey"
)

// SplitCombo converts a canonical combo string ("Ctrl+Shift+Up") into
// OS modifiers and a key. The last token is the key; everything before
// it must be a modifier. Token order within the modifiers does not
// matter to the OS.
func SplitCombo(combo string) ([]hotkey.Modifier, hotkey.Key, error) {
	parts := strings.Split(combo, "+")
	if len(parts) == 0 || combo == "" {
		return nil, 0, ErrEmptyCombo
	}

	keyToken := strings.ToLower(parts[len(parts)-1])
	key, ok := keyMap[keyToken]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKey, parts[len(parts)-1])
	}

	var mods []hotkey.Modifier
	for _, part := range parts[:len(parts)-1] {
		mod, ok := modifierMap[strings.ToLower(part)]
		if !ok {
			return nil, 0, fmt.Errorf("%w: %q", ErrUnknownModifier, part)
		}
		mods = append(mods, mod)
	}

	return mods, key, nil
}
