package hotkey

import "errors"

var (
	// ErrUnknownKey means the combo's key token has no OS key mapping.
	ErrUnknownKey = errors.New("unknown key token")

	// ErrUnknownModifier means a modifier token has no OS modifier
	// mapping on this platform.
	ErrUnknownModifier = errors.New("unknown modifier token")

	// ErrEmptyCombo means the combo had no tokens.
	ErrEmptyCombo = errors.New("empty combo")

	// ErrCapabilityUnavailable means the hotkey facility itself failed,
	// as opposed to one registration being rejected.
	ErrCapabilityUnavailable = errors.New("hotkey capability unavailable")
)
