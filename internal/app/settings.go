package app

import (
	"github.com/glimmer-app/glimmer/internal/settings"
)

// Settings returns a copy of the current configuration.
func (app *Application) Settings() settings.Configuration {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config.Clone()
}

// SaveSettings persists a new configuration, swaps the shortcut catalog
// to match, and re-registers if the application is running.
func (app *Application) SaveSettings(cfg settings.Configuration) error {
	cfg.Normalize()
	if err := app.settingsStore.Save(cfg); err != nil {
		return err
	}
	return app.adoptConfig(cfg)
}

// ResetSettings restores the default configuration on disk and in
// memory.
func (app *Application) ResetSettings() error {
	cfg, err := app.settingsStore.Reset()
	if err != nil {
		return err
	}
	return app.adoptConfig(cfg)
}

// reloadSettings re-reads the configuration after an external change to
// the settings file.
func (app *Application) reloadSettings(path string) {
	log := app.logger.WithComponent("settings")
	log.Info("settings file changed: %s", path)

	cfg, err := app.settingsStore.Load()
	if err != nil {
		log.Error("reload failed, keeping previous configuration: %v", err)
		return
	}
	if err := app.adoptConfig(cfg); err != nil {
		log.Error("applying reloaded configuration: %v", err)
	}
}

// adoptConfig installs a configuration into the running application:
// catalog swap, window geometry, and a fresh registration pass when
// hotkeys are live.
func (app *Application) adoptConfig(cfg settings.Configuration) error {
	app.mu.Lock()
	app.config = cfg.Clone()
	app.mu.Unlock()

	app.shortcuts.Replace(cfg.Shortcuts)

	if err := app.window.SetSize(cfg.ScreenWidth, cfg.ScreenHeight); err != nil {
		app.logger.WithComponent("window").Warn("resize: %v", err)
	}

	if app.running.Load() {
		_, err := app.RegisterAllShortcuts()
		return err
	}
	return nil
}
