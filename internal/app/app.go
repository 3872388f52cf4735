// Package app wires the Glimmer components together and manages the
// application lifecycle: settings on disk, the shortcut catalog, OS
// hotkey registration, and the command surface the overlay invokes.
package app

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/glimmer-app/glimmer/internal/dispatcher"
	"github.com/glimmer-app/glimmer/internal/event"
	"github.com/glimmer-app/glimmer/internal/hotkey"
	"github.com/glimmer-app/glimmer/internal/platform"
	"github.com/glimmer-app/glimmer/internal/settings"
	"github.com/glimmer-app/glimmer/internal/shortcut"
	"github.com/glimmer-app/glimmer/internal/window"
)

// Application is the central coordinator for all Glimmer components.
type Application struct {
	mu sync.RWMutex

	logger *Logger

	// Persistence
	settingsStore *settings.Store
	config        settings.Configuration // guarded by mu

	// Shortcut pipeline
	shortcuts    *shortcut.Store
	bus          *event.Bus
	registrar    hotkey.Registrar
	synchronizer *hotkey.Synchronizer

	// Surface
	dispatcher *dispatcher.Dispatcher
	window     window.Manager

	watcher *settings.Watcher
	isMac   bool

	running atomic.Bool
	done    chan struct{}

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigDir is the settings directory. Empty means the per-user
	// default.
	ConfigDir string

	// LogLevel sets the logging verbosity.
	LogLevel string

	// LogOutput is where logs are written. Defaults to stderr.
	LogOutput io.Writer

	// WatchSettings reloads the configuration when the settings file
	// changes on disk.
	WatchSettings bool

	// Registrar overrides the OS hotkey backend. Nil means the real one.
	Registrar hotkey.Registrar

	// Window overrides the overlay window manager. Nil means the
	// built-in state-tracking overlay.
	Window window.Manager
}

// New creates a new Application with the given options. Components are
// initialized in dependency order; no OS hotkeys are registered until
// Run.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:  opts,
		isMac: platform.IsMac(),
		done:  make(chan struct{}),
	}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}

	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	logCfg := DefaultLoggerConfig()
	logCfg.Level = ParseLogLevel(app.opts.LogLevel)
	if app.opts.LogOutput != nil {
		logCfg.Output = app.opts.LogOutput
	}
	app.logger = NewLogger(logCfg)

	// Settings store and initial configuration.
	dir := app.opts.ConfigDir
	if dir == "" {
		var err error
		dir, err = settings.DefaultDir()
		if err != nil {
			return &InitError{Component: "settings", Err: err}
		}
	}
	app.settingsStore = settings.NewStore(dir)

	cfg, err := app.settingsStore.Load()
	if err != nil {
		return &InitError{Component: "settings", Err: err}
	}
	app.config = cfg

	// Shortcut catalog seeded from the loaded configuration.
	app.shortcuts = shortcut.NewStoreFrom(cfg.Shortcuts)

	// Trigger delivery.
	app.bus = event.NewBus()

	// OS hotkey backend.
	app.registrar = app.opts.Registrar
	if app.registrar == nil {
		app.registrar = hotkey.NewSystemRegistrar()
	}
	app.synchronizer = hotkey.NewSynchronizer(app.registrar, app.bus)

	// Overlay window.
	app.window = app.opts.Window
	if app.window == nil {
		app.window = window.NewOverlay(cfg.ScreenWidth, cfg.ScreenHeight)
	}

	// Command surface.
	app.dispatcher = dispatcher.New()
	app.registerCommands()

	app.subscribeTriggers()

	return nil
}

// Dispatcher returns the command surface.
func (app *Application) Dispatcher() *dispatcher.Dispatcher {
	return app.dispatcher
}

// Bus returns the trigger bus. The overlay surface subscribes here to
// react to shortcut presses.
func (app *Application) Bus() *event.Bus {
	return app.bus
}

// Window returns the overlay window manager.
func (app *Application) Window() window.Manager {
	return app.window
}

// Platform reports whether the host follows mac conventions.
func (app *Application) Platform() platform.Platform {
	return platform.Of(app.isMac)
}
