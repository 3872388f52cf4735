//go:build windows

package hotkey

import "golang.design/x/hotkey"

// modifierMap maps lowercased canonical modifier tokens to Win32
// modifiers. The parser downgrades the meta modifier to Ctrl off mac,
// so "cmd" only appears here for combos canonicalized elsewhere; treat
// it as the Windows key.
var modifierMap = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModAlt,
	"cmd":   hotkey.ModWin,
}
