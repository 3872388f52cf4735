package app

import (
	"context"

	"github.com/glimmer-app/glimmer/internal/settings"
)

// Run starts the application: the settings watcher starts if enabled,
// hotkeys are registered, and the call blocks until Shutdown or the
// context is cancelled. A shut-down application cannot be restarted.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	select {
	case <-app.done:
		app.running.Store(false)
		return ErrShutdown
	default:
	}

	// The watcher starts before any hotkey is live: triggers can only
	// fire once registration happens, so a concurrent quit always sees
	// the watcher field in its final state.
	if app.opts.WatchSettings {
		w, err := settings.WatchDir(app.settingsStore.Dir(), app.reloadSettings)
		if err != nil {
			// The watcher is a convenience; run without it.
			app.logger.WithComponent("settings").Warn("watcher unavailable: %v", err)
		} else {
			app.mu.Lock()
			app.watcher = w
			app.mu.Unlock()
		}
	}

	if _, err := app.RegisterAllShortcuts(); err != nil {
		_ = app.closeWatcher()
		app.running.Store(false)
		return err
	}

	app.logger.Info("ready on %s", app.Platform())

	select {
	case <-ctx.Done():
		return app.Shutdown()
	case <-app.done:
		return nil
	}
}

// Shutdown stops the application: hotkeys are released, the watcher and
// bus are closed, and the overlay window is destroyed. Safe to call
// more than once.
func (app *Application) Shutdown() error {
	if !app.running.CompareAndSwap(true, false) {
		return nil
	}

	var firstErr error

	if err := app.UnregisterAllShortcuts(); err != nil {
		firstErr = err
	}

	if err := app.closeWatcher(); err != nil && firstErr == nil {
		firstErr = err
	}

	app.bus.Close()

	if err := app.window.Close(); err != nil && firstErr == nil {
		firstErr = err
	}

	app.logger.Info("shut down")
	close(app.done)

	return firstErr
}

// closeWatcher detaches and closes the settings watcher, if one is
// running.
func (app *Application) closeWatcher() error {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

// Running reports whether Run has been called and Shutdown has not.
func (app *Application) Running() bool {
	return app.running.Load()
}
