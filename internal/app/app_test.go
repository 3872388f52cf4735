package app

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/glimmer-app/glimmer/internal/auth"
	"github.com/glimmer-app/glimmer/internal/dispatcher"
	"github.com/glimmer-app/glimmer/internal/event"
	"github.com/glimmer-app/glimmer/internal/hotkey"
	"github.com/glimmer-app/glimmer/internal/platform"
	"github.com/glimmer-app/glimmer/internal/shortcut"
	"github.com/glimmer-app/glimmer/internal/window"
)

// fakeRegistrar records registrations without touching the OS.
type fakeRegistrar struct {
	mu     sync.Mutex
	next   hotkey.Handle
	active map[hotkey.Handle]string
	sinks  map[string]hotkey.Sink
	passes int
}

func newFakeRegistrar() *fakeRegistrar {
	return &fakeRegistrar{
		active: make(map[hotkey.Handle]string),
		sinks:  make(map[string]hotkey.Sink),
	}
}

func (r *fakeRegistrar) Register(combo, action string, sink hotkey.Sink) (hotkey.Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.active[r.next] = action
	r.sinks[action] = sink
	return r.next, nil
}

func (r *fakeRegistrar) Unregister(h hotkey.Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.active, h)
}

func (r *fakeRegistrar) UnregisterAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = make(map[hotkey.Handle]string)
	r.sinks = make(map[string]hotkey.Sink)
	r.passes++
	return nil
}

func (r *fakeRegistrar) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// press simulates the OS delivering a keydown for an action.
func (r *fakeRegistrar) press(action string) bool {
	r.mu.Lock()
	sink := r.sinks[action]
	r.mu.Unlock()
	if sink == nil {
		return false
	}
	sink.Publish(event.Trigger{Action: action, Time: time.Now()})
	return true
}

func newTestApp(t *testing.T) (*Application, *fakeRegistrar, *window.Overlay) {
	t.Helper()

	reg := newFakeRegistrar()
	win := window.NewOverlay(500, 400)
	a, err := New(Options{
		ConfigDir: t.TempDir(),
		LogOutput: io.Discard,
		Registrar: reg,
		Window:    win,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return a, reg, win
}

func TestRegisterAllShortcuts(t *testing.T) {
	a, reg, _ := newTestApp(t)

	report, err := a.RegisterAllShortcuts()
	if err != nil {
		t.Fatalf("RegisterAllShortcuts() error = %v", err)
	}
	want := len(shortcut.DefaultCatalog())
	if report.Registered != want {
		t.Errorf("Registered = %d, want %d", report.Registered, want)
	}
	if report.Failed != 0 {
		t.Errorf("Failed = %d, want 0", report.Failed)
	}
	if reg.count() != want {
		t.Errorf("live registrations = %d, want %d", reg.count(), want)
	}
}

func TestUpdateShortcutPersistsAndResyncs(t *testing.T) {
	a, reg, _ := newTestApp(t)
	if _, err := a.RegisterAllShortcuts(); err != nil {
		t.Fatal(err)
	}
	passesBefore := reg.passes

	if err := a.UpdateShortcut("screenshot", a.Platform(), "Ctrl+Shift+5"); err != nil {
		t.Fatalf("UpdateShortcut() error = %v", err)
	}

	spec, err := a.Shortcut("screenshot")
	if err != nil {
		t.Fatal(err)
	}
	got, _ := spec.EffectiveBinding(a.Platform())
	if got != "Ctrl+Shift+5" {
		t.Errorf("effective binding = %q, want override", got)
	}
	if reg.passes <= passesBefore {
		t.Error("update did not trigger a registration pass")
	}

	// The override survives a reload from disk.
	b, err := New(Options{
		ConfigDir: a.settingsStore.Dir(),
		LogOutput: io.Discard,
		Registrar: newFakeRegistrar(),
		Window:    window.NewOverlay(500, 400),
	})
	if err != nil {
		t.Fatal(err)
	}
	spec, err = b.Shortcut("screenshot")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := spec.EffectiveBinding(b.Platform()); got != "Ctrl+Shift+5" {
		t.Errorf("binding after reload = %q, want override", got)
	}
}

func TestUpdateShortcutOtherPlatform(t *testing.T) {
	a, _, _ := newTestApp(t)

	host := a.Platform()
	other := platform.Mac
	if host == platform.Mac {
		other = platform.Windows
	}

	_, err := a.Dispatcher().Dispatch(context.Background(), "shortcuts.update", dispatcher.Args{
		"action":   "screenshot",
		"platform": string(other),
		"shortcut": "Alt+F4",
	})
	if err != nil {
		t.Fatalf("shortcuts.update error = %v", err)
	}

	spec, err := a.Shortcut("screenshot")
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := spec.EffectiveBinding(other); got != "Alt+F4" {
		t.Errorf("%s binding = %q, want the override", other, got)
	}
	// The host family keeps its default.
	def, _ := (&shortcut.Spec{Default: spec.Default}).EffectiveBinding(host)
	if got, _ := spec.EffectiveBinding(host); got != def {
		t.Errorf("%s binding = %q, want untouched default %q", host, got, def)
	}
}

func TestResetShortcut(t *testing.T) {
	a, _, _ := newTestApp(t)

	if err := a.UpdateShortcut("quit", a.Platform(), "Ctrl+Shift+X"); err != nil {
		t.Fatal(err)
	}
	if err := a.ResetShortcut("quit"); err != nil {
		t.Fatalf("ResetShortcut() error = %v", err)
	}

	spec, err := a.Shortcut("quit")
	if err != nil {
		t.Fatal(err)
	}
	if spec.Custom != nil {
		t.Error("override survived reset")
	}
}

func TestResetUnknownAction(t *testing.T) {
	a, _, _ := newTestApp(t)
	if err := a.ResetShortcut("no-such-action"); !errors.Is(err, shortcut.ErrNotFound) {
		t.Errorf("ResetShortcut() error = %v, want ErrNotFound", err)
	}
}

func TestTriggerMovesWindow(t *testing.T) {
	a, reg, win := newTestApp(t)
	if _, err := a.RegisterAllShortcuts(); err != nil {
		t.Fatal(err)
	}

	if !reg.press("move-right") {
		t.Fatal("move-right not registered")
	}

	deadline := time.Now().Add(2 * time.Second)
	for win.State().X == 0 {
		if time.Now().After(deadline) {
			t.Fatal("window never moved after trigger")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := win.State().X; got != win.MoveStep() {
		t.Errorf("X = %d, want one step", got)
	}
}

func TestRunAndShutdown(t *testing.T) {
	a, reg, win := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !a.Running() {
		if time.Now().After(deadline) {
			t.Fatal("application never reached running state")
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() never returned after cancel")
	}

	if reg.count() != 0 {
		t.Errorf("live registrations after shutdown = %d, want 0", reg.count())
	}
	if !win.State().Closed {
		t.Error("window not closed after shutdown")
	}
}

func TestRunRejectedAfterShutdown(t *testing.T) {
	a, reg, _ := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	deadline := time.Now().Add(2 * time.Second)
	for !a.Running() {
		if time.Now().After(deadline) {
			t.Fatal("application never reached running state")
		}
		time.Sleep(5 * time.Millisecond)
	}
	cancel()
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if err := a.Run(context.Background()); !errors.Is(err, ErrShutdown) {
		t.Fatalf("second Run() error = %v, want ErrShutdown", err)
	}
	if a.Running() {
		t.Error("application running after rejected Run")
	}
	if reg.count() != 0 {
		t.Errorf("rejected Run left %d registrations live", reg.count())
	}
}

func TestQuitTriggerStopsWatchedRun(t *testing.T) {
	reg := newFakeRegistrar()
	win := window.NewOverlay(500, 400)
	a, err := New(Options{
		ConfigDir:     t.TempDir(),
		LogOutput:     io.Discard,
		WatchSettings: true,
		Registrar:     reg,
		Window:        win,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- a.Run(context.Background()) }()

	// The first successful press both proves quit is registered and
	// fires it.
	deadline := time.Now().Add(2 * time.Second)
	for !reg.press("quit") {
		if time.Now().After(deadline) {
			t.Fatal("quit never registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("Run() never returned after quit trigger")
	}

	if reg.count() != 0 {
		t.Errorf("live registrations after quit = %d, want 0", reg.count())
	}
	if !win.State().Closed {
		t.Error("window not closed after quit")
	}
}

func TestCommandSurface(t *testing.T) {
	a, _, win := newTestApp(t)
	ctx := context.Background()
	d := a.Dispatcher()

	if _, err := d.Dispatch(ctx, "window.toggle", nil); err != nil {
		t.Fatalf("window.toggle error = %v", err)
	}
	if win.State().Visible {
		t.Error("window still visible after toggle")
	}

	if _, err := d.Dispatch(ctx, "window.move", dispatcher.Args{"dx": float64(10), "dy": float64(-5)}); err != nil {
		t.Fatalf("window.move error = %v", err)
	}
	if st := win.State(); st.X != 10 || st.Y != -5 {
		t.Errorf("position = (%d,%d), want (10,-5)", st.X, st.Y)
	}

	if _, err := d.Dispatch(ctx, "shortcuts.update", dispatcher.Args{}); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("shortcuts.update without action: error = %v, want ErrMissingArgument", err)
	}

	got, err := d.Dispatch(ctx, "auth.callback", dispatcher.Args{"url": "glimmer://auth?code=abc"})
	if err != nil {
		t.Fatalf("auth.callback error = %v", err)
	}
	cb, ok := got.(auth.Callback)
	if !ok || cb.Code != "abc" {
		t.Errorf("auth.callback result = %#v, want code abc", got)
	}
	if !win.State().Visible {
		t.Error("window not shown after auth callback")
	}
}
