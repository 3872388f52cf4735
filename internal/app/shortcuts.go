package app

import (
	"github.com/glimmer-app/glimmer/internal/hotkey"
	"github.com/glimmer-app/glimmer/internal/platform"
	"github.com/glimmer-app/glimmer/internal/shortcut"
)

// RegisterAllShortcuts performs a full registration pass: every live OS
// hotkey is released, then the current catalog is re-registered. The
// report carries per-action outcomes; a rejected binding is logged and
// absorbed, never fatal.
func (app *Application) RegisterAllShortcuts() (hotkey.SyncReport, error) {
	specs := app.shortcuts.Snapshot()

	report, err := app.synchronizer.Sync(specs, app.isMac)
	if err != nil {
		app.logger.WithComponent("hotkey").Error("registration pass %s failed: %v", report.PassID, err)
		return report, err
	}

	app.shortcuts.RecordSync(report.Registered, report.Failed)

	log := app.logger.WithComponent("hotkey").WithField("pass", report.PassID)
	for _, w := range report.Warnings {
		log.Warn("%s", w)
	}
	for _, id := range report.FailedActions {
		log.Warn("could not register %s; the combo may be claimed by another program", id)
	}
	log.Info("registered %d shortcuts, %d failed", report.Registered, report.Failed)

	return report, nil
}

// UnregisterAllShortcuts releases every live OS hotkey.
func (app *Application) UnregisterAllShortcuts() error {
	if err := app.synchronizer.UnregisterAll(); err != nil {
		app.logger.WithComponent("hotkey").Error("unregister all: %v", err)
		return err
	}
	app.logger.WithComponent("hotkey").Info("all shortcuts unregistered")
	return nil
}

// UpdateShortcut sets the override for an action on one platform
// family, persists the configuration, and re-registers. The settings
// screen edits both families, so p need not be the host platform; only
// host-platform changes affect the live registrations. The text is
// stored as the user typed it; canonicalization happens at
// registration time.
func (app *Application) UpdateShortcut(actionID string, p platform.Platform, text string) error {
	if err := app.shortcuts.UpdateOverride(actionID, p, text); err != nil {
		return err
	}
	if err := app.persistShortcuts(); err != nil {
		return err
	}
	_, err := app.RegisterAllShortcuts()
	return err
}

// ResetShortcut removes all overrides for an action, restoring its
// defaults, then persists and re-registers.
func (app *Application) ResetShortcut(actionID string) error {
	if err := app.shortcuts.ResetOverrides(actionID); err != nil {
		return err
	}
	if err := app.persistShortcuts(); err != nil {
		return err
	}
	_, err := app.RegisterAllShortcuts()
	return err
}

// ResetAllShortcuts restores the default catalog, dropping every user
// override, then persists and re-registers.
func (app *Application) ResetAllShortcuts() error {
	app.shortcuts.Replace(shortcut.DefaultCatalog())
	if err := app.persistShortcuts(); err != nil {
		return err
	}
	_, err := app.RegisterAllShortcuts()
	return err
}

// Shortcuts returns the catalog snapshot ordered by action id.
func (app *Application) Shortcuts() []*shortcut.Spec {
	return app.shortcuts.Snapshot()
}

// Shortcut returns one spec by action id.
func (app *Application) Shortcut(actionID string) (*shortcut.Spec, error) {
	return app.shortcuts.Get(actionID)
}

// persistShortcuts writes the current catalog back into the settings
// blob on disk. The rest of the blob rides along unchanged.
func (app *Application) persistShortcuts() error {
	app.mu.Lock()
	app.config.Shortcuts = app.shortcuts.Catalog()
	cfg := app.config.Clone()
	app.mu.Unlock()

	return app.settingsStore.Save(cfg)
}
