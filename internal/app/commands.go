package app

import (
	"context"
	"errors"

	"github.com/glimmer-app/glimmer/internal/auth"
	"github.com/glimmer-app/glimmer/internal/dispatcher"
	"github.com/glimmer-app/glimmer/internal/platform"
)

// ErrMissingArgument indicates a command was invoked without a required
// argument.
var ErrMissingArgument = errors.New("app: missing command argument")

// registerCommands binds every operation the overlay surface can invoke
// to the dispatcher.
func (app *Application) registerCommands() {
	d := app.dispatcher

	// Shortcut catalog.
	d.Register("shortcuts.list", func(context.Context, dispatcher.Args) (any, error) {
		return app.Shortcuts(), nil
	})
	d.Register("shortcuts.register_all", func(context.Context, dispatcher.Args) (any, error) {
		return app.RegisterAllShortcuts()
	})
	d.Register("shortcuts.unregister_all", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.UnregisterAllShortcuts()
	})
	d.Register("shortcuts.update", func(_ context.Context, args dispatcher.Args) (any, error) {
		action := args.String("action")
		if action == "" {
			return nil, ErrMissingArgument
		}
		p := app.Platform()
		if name := args.String("platform"); name != "" {
			p = platform.FromName(name)
		}
		return nil, app.UpdateShortcut(action, p, args.String("shortcut"))
	})
	d.Register("shortcuts.reset", func(_ context.Context, args dispatcher.Args) (any, error) {
		action := args.String("action")
		if action == "" {
			return nil, ErrMissingArgument
		}
		return nil, app.ResetShortcut(action)
	})
	d.Register("shortcuts.reset_all", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.ResetAllShortcuts()
	})

	// Settings blob.
	d.Register("settings.get", func(context.Context, dispatcher.Args) (any, error) {
		return app.Settings(), nil
	})
	d.Register("settings.reset", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.ResetSettings()
	})

	// Window control.
	d.Register("window.hide", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.window.Hide()
	})
	d.Register("window.show", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.window.Show()
	})
	d.Register("window.toggle", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.window.Toggle()
	})
	d.Register("window.move", func(_ context.Context, args dispatcher.Args) (any, error) {
		dx, _ := args.Int("dx")
		dy, _ := args.Int("dy")
		return nil, app.window.MoveBy(dx, dy)
	})
	d.Register("window.set_size", func(_ context.Context, args dispatcher.Args) (any, error) {
		w, okW := args.Int("width")
		h, okH := args.Int("height")
		if !okW || !okH {
			return nil, ErrMissingArgument
		}
		return nil, app.window.SetSize(w, h)
	})
	d.Register("window.set_always_on_top", func(_ context.Context, args dispatcher.Args) (any, error) {
		return nil, app.window.SetAlwaysOnTop(args.Bool("pinned"))
	})
	d.Register("window.restart", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.window.Restart()
	})
	d.Register("window.close", func(context.Context, dispatcher.Args) (any, error) {
		return nil, app.Shutdown()
	})

	// OAuth deep-link callback.
	d.Register("auth.callback", func(_ context.Context, args dispatcher.Args) (any, error) {
		return app.handleAuthCallback(args.String("url"))
	})
}

// handleAuthCallback decodes a deep-link URL and brings the overlay
// forward so the user sees the sign-in complete.
func (app *Application) handleAuthCallback(rawURL string) (auth.Callback, error) {
	cb, err := auth.ExtractCode(rawURL)
	if err != nil {
		app.logger.WithComponent("auth").Error("deep link carried no code: %v", err)
		return auth.Callback{}, err
	}

	if err := app.window.Show(); err != nil {
		app.logger.WithComponent("auth").Warn("showing window: %v", err)
	}

	app.logger.WithComponent("auth").Info("auth callback handled")
	return cb, nil
}
