//go:build darwin

package hotkey

import "golang.design/x/hotkey"

// modifierMap maps lowercased canonical modifier tokens to macOS
// modifiers.
var modifierMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModOption,
	"cmd":   hotkey.ModCmd,
}
