// Package event carries fired-hotkey triggers from the OS callback
// boundary to the rest of the application.
//
// The OS hotkey facility delivers key presses on arbitrary goroutines
// at arbitrary times. Registrations therefore hand the facility an
// opaque sink (the Bus) rather than a closure over mutable state, so a
// firing callback can never re-enter the synchronizer's critical
// section or the shortcut store. Handlers run on the bus's own delivery
// goroutine.
package event

import "time"

// Trigger is one fired hotkey.
type Trigger struct {
	// Action is the action id the combo was bound to.
	Action string

	// Combo is the canonical combo that fired, as registered.
	Combo string

	// Time is when the trigger was accepted into the bus.
	Time time.Time
}

// Handler consumes triggers.
type Handler func(Trigger)
