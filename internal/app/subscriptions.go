package app

import (
	"github.com/glimmer-app/glimmer/internal/event"
)

// subscribeTriggers routes shortcut presses to their effects. Window
// actions are handled here; content actions (screenshot, generate,
// record) only reach the bus, where the overlay surface subscribes.
func (app *Application) subscribeTriggers() {
	step := 20
	if o, ok := app.window.(interface{ MoveStep() int }); ok {
		step = o.MoveStep()
	}

	move := func(dx, dy int) event.Handler {
		return func(t event.Trigger) {
			if err := app.window.MoveBy(dx, dy); err != nil {
				app.logger.WithComponent("window").Warn("%s: %v", t.Action, err)
			}
		}
	}

	app.bus.SubscribeAction("move-up", move(0, -step))
	app.bus.SubscribeAction("move-down", move(0, step))
	app.bus.SubscribeAction("move-left", move(-step, 0))
	app.bus.SubscribeAction("move-right", move(step, 0))

	app.bus.SubscribeAction("hide-show", func(event.Trigger) {
		if err := app.window.Toggle(); err != nil {
			app.logger.WithComponent("window").Warn("toggle: %v", err)
		}
	})

	app.bus.SubscribeAction("quit", func(event.Trigger) {
		app.logger.Info("emergency exit triggered")
		// Shutdown blocks on the bus draining; run it off the delivery
		// goroutine.
		go func() { _ = app.Shutdown() }()
	})

	app.bus.Subscribe(func(t event.Trigger) {
		app.logger.WithComponent("trigger").Debug("%s (%s)", t.Action, t.Combo)
	})
}
