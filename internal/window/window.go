// Package window abstracts control of the overlay window.
//
// Shortcut actions drive the window exclusively through the Manager
// interface so the hotkey plumbing stays independent of whatever
// windowing layer hosts the overlay. A state-tracking implementation
// backs headless operation and tests.
package window

import (
	"errors"
	"sync"
)

// ErrUnsupported is returned by operations the hosting platform cannot
// perform, such as restart on a platform without self-exec support.
var ErrUnsupported = errors.New("window: operation not supported on this platform")

// Manager is the control surface shortcut actions use to drive the
// overlay window. Implementations must be safe for concurrent use;
// triggers arrive from the event delivery goroutine.
type Manager interface {
	// MoveBy shifts the window by the given deltas in screen pixels.
	MoveBy(dx, dy int) error
	// Hide makes the window invisible without destroying it.
	Hide() error
	// Show makes the window visible and brings it forward.
	Show() error
	// Toggle flips visibility.
	Toggle() error
	// SetSize resizes the window to the given logical dimensions.
	SetSize(width, height int) error
	// SetAlwaysOnTop pins or unpins the window above normal windows.
	SetAlwaysOnTop(pinned bool) error
	// Close destroys the window and ends the session.
	Close() error
	// Restart relaunches the application process.
	Restart() error
}

// State is a snapshot of the overlay geometry and visibility.
type State struct {
	X, Y          int
	Width, Height int
	Visible       bool
	AlwaysOnTop   bool
	Closed        bool
}

// Overlay is a state-tracking Manager. It records every operation so
// callers can inspect the resulting geometry; a real windowing backend
// would mirror these calls out to the OS.
type Overlay struct {
	mu    sync.Mutex
	state State

	// moveStep is the pixel distance a single movement action covers.
	moveStep int
}

// moveStepDefault matches the nudge distance of the arrow actions.
const moveStepDefault = 20

// NewOverlay returns an overlay manager with the given initial size,
// visible and pinned on top.
func NewOverlay(width, height int) *Overlay {
	return &Overlay{
		state: State{
			Width:       width,
			Height:      height,
			Visible:     true,
			AlwaysOnTop: true,
		},
		moveStep: moveStepDefault,
	}
}

// MoveStep returns the per-action nudge distance in pixels.
func (o *Overlay) MoveStep() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.moveStep
}

func (o *Overlay) MoveBy(dx, dy int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.X += dx
	o.state.Y += dy
	return nil
}

func (o *Overlay) Hide() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.Visible = false
	return nil
}

func (o *Overlay) Show() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.Visible = true
	return nil
}

func (o *Overlay) Toggle() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.Visible = !o.state.Visible
	return nil
}

func (o *Overlay) SetSize(width, height int) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.Width = width
	o.state.Height = height
	return nil
}

func (o *Overlay) SetAlwaysOnTop(pinned bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.state.Closed {
		return ErrUnsupported
	}
	o.state.AlwaysOnTop = pinned
	return nil
}

func (o *Overlay) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.Closed = true
	o.state.Visible = false
	return nil
}

// Restart is not available without a hosting shell to relaunch us.
func (o *Overlay) Restart() error {
	return ErrUnsupported
}

// State returns a snapshot of the current overlay state.
func (o *Overlay) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}
