//go:build !darwin && !windows

package hotkey

import "golang.design/x/hotkey"

// modifierMap maps lowercased canonical modifier tokens to X11
// modifiers. Mod1 is Alt, Mod4 is Super on stock layouts.
var modifierMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1,
	"cmd":   hotkey.Mod4,
}
