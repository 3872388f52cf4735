package hotkey

import "github.com/glimmer-app/glimmer/internal/event"

// Handle identifies one live OS registration. Handles are only valid
// between a successful Register and the next Unregister/UnregisterAll.
type Handle uint64

// Sink receives triggers fired by registered hotkeys. The OS delivers
// presses on arbitrary goroutines; implementations must be safe for
// that and must not call back into the Registrar.
type Sink interface {
	Publish(event.Trigger)
}

// Registrar abstracts the OS global-hotkey facility.
type Registrar interface {
	// Register binds combo so that presses publish a Trigger for action
	// into sink. A rejection (combo already claimed, key not
	// representable) is returned as an error and affects only this
	// combo.
	Register(combo, action string, sink Sink) (Handle, error)

	// Unregister releases one registration. Unknown handles are
	// ignored.
	Unregister(h Handle)

	// UnregisterAll releases every registration held by this registrar.
	// An error here means the facility itself is unavailable.
	UnregisterAll() error
}
