// Package dispatcher routes named commands from the overlay surface to
// their handlers. It is the seam between the UI layer and the
// application core: every operation the surface can invoke is a
// registered command.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Dispatcher errors.
var (
	// ErrUnknownCommand indicates no handler is registered for a command.
	ErrUnknownCommand = errors.New("dispatcher: unknown command")

	// ErrPanic indicates the handler panicked.
	ErrPanic = errors.New("dispatcher: handler panic")
)

// Args carries the named arguments of one invocation.
type Args map[string]any

// String returns the string argument under key, or "" if absent or not
// a string.
func (a Args) String(key string) string {
	s, _ := a[key].(string)
	return s
}

// Int returns the integer argument under key. JSON decoding delivers
// numbers as float64, so both forms are accepted.
func (a Args) Int(key string) (int, bool) {
	switch v := a[key].(type) {
	case int:
		return v, true
	case float64:
		return int(v), true
	}
	return 0, false
}

// Bool returns the boolean argument under key, or false if absent.
func (a Args) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// HandlerFunc executes one command. The returned value is serialized
// back to the caller; nil means no payload.
type HandlerFunc func(ctx context.Context, args Args) (any, error)

// Dispatcher manages command registration and invocation by exact
// command name.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]HandlerFunc
}

// New creates an empty dispatcher.
func New() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string]HandlerFunc),
	}
}

// Register binds a handler to a command name. Registering the same name
// twice replaces the earlier handler.
func (d *Dispatcher) Register(name string, h HandlerFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[name] = h
}

// Unregister removes the handler for a command name.
func (d *Dispatcher) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.handlers, name)
}

// Has reports whether a handler is registered for the command.
func (d *Dispatcher) Has(name string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.handlers[name]
	return ok
}

// List returns all registered command names, sorted.
func (d *Dispatcher) List() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, 0, len(d.handlers))
	for name := range d.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dispatch runs the handler registered for name. A panicking handler is
// recovered and reported as a wrapped ErrPanic so one bad command
// cannot take down the process.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args Args) (result any, err error) {
	d.mu.RLock()
	h, ok := d.handlers[name]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %q: %v", ErrPanic, name, r)
		}
	}()

	return h(ctx, args)
}
