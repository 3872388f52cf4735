package hotkey

import (
	"fmt"
	"sync"
	"time"

	"golang.design/x/hotkey"

	"github.com/glimmer-app/glimmer/internal/event"
)

// SystemRegistrar is the production Registrar backed by
// golang.design/x/hotkey. Each registration owns a goroutine that
// forwards Keydown events into the sink until the registration is
// released.
type SystemRegistrar struct {
	mu     sync.Mutex
	next   Handle
	active map[Handle]*liveHotkey
}

type liveHotkey struct {
	hk   *hotkey.Hotkey
	stop chan struct{}
	done chan struct{}
}

// NewSystemRegistrar creates an empty registrar.
func NewSystemRegistrar() *SystemRegistrar {
	return &SystemRegistrar{active: make(map[Handle]*liveHotkey)}
}

// Register implements Registrar.
func (r *SystemRegistrar) Register(combo, action string, sink Sink) (Handle, error) {
	mods, key, err := SplitCombo(combo)
	if err != nil {
		return 0, err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return 0, fmt.Errorf("registering %q: %w", combo, err)
	}

	live := &liveHotkey{
		hk:   hk,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}

	r.mu.Lock()
	r.next++
	h := r.next
	r.active[h] = live
	r.mu.Unlock()

	go func() {
		defer close(live.done)
		for {
			select {
			case <-hk.Keydown():
				sink.Publish(event.Trigger{Action: action, Combo: combo, Time: time.Now()})
			case <-live.stop:
				return
			}
		}
	}()

	return h, nil
}

// Unregister implements Registrar.
func (r *SystemRegistrar) Unregister(h Handle) {
	r.mu.Lock()
	live, ok := r.active[h]
	if ok {
		delete(r.active, h)
	}
	r.mu.Unlock()
	if !ok {
		return
	}
	r.release(live)
}

// UnregisterAll implements Registrar.
func (r *SystemRegistrar) UnregisterAll() error {
	r.mu.Lock()
	all := r.active
	r.active = make(map[Handle]*liveHotkey)
	r.mu.Unlock()

	for _, live := range all {
		r.release(live)
	}
	return nil
}

// Count returns the number of live registrations.
func (r *SystemRegistrar) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

func (r *SystemRegistrar) release(live *liveHotkey) {
	// Unregister first so no further Keydown events arrive, then stop
	// the forwarding goroutine.
	_ = live.hk.Unregister()
	close(live.stop)
	<-live.done
}
