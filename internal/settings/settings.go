// Package settings persists the application configuration blob.
//
// The shortcut subsystem only touches the shortcuts sub-map; the rest
// of the blob (prompts, window geometry, opacity) belongs to the
// overlay surface and rides along untouched. Settings live as pretty
// JSON in the user config directory, with a TOML variant accepted for
// hand-written files. Legacy camelCase files from the Electron era are
// migrated on load.
package settings

import (
	"github.com/glimmer-app/glimmer/internal/shortcut"
)

// Configuration is the full persisted settings blob.
type Configuration struct {
	LLM          string                    `json:"llm" toml:"llm"`
	SystemPrompt string                    `json:"system_prompt" toml:"system_prompt"`
	RetryPrompt  string                    `json:"retry_prompt" toml:"retry_prompt"`
	ScreenWidth  int                       `json:"screen_width" toml:"screen_width"`
	ScreenHeight int                       `json:"screen_height" toml:"screen_height"`
	Focusable    bool                      `json:"focusable" toml:"focusable"`
	ShowBanner   bool                      `json:"show_banner" toml:"show_banner"`
	Opacity      float64                   `json:"opacity" toml:"opacity"`
	Shortcuts    map[string]*shortcut.Spec `json:"shortcuts" toml:"shortcuts"`
}

// Default returns the out-of-the-box configuration, including the full
// default shortcut catalog.
func Default() Configuration {
	return Configuration{
		LLM:          "chatgpt",
		SystemPrompt: "ENTER CUSTOM PROMPT OR USE TEMPLATES",
		RetryPrompt:  "ENTER RETRY/BACKUP PROMPT",
		ScreenWidth:  500,
		ScreenHeight: 400,
		Focusable:    true,
		ShowBanner:   true,
		Opacity:      1.0,
		Shortcuts:    shortcut.DefaultCatalog(),
	}
}

// Normalize reconciles a loaded configuration with the fixed action
// catalog: missing actions are back-filled from the defaults, entries
// whose id does not match their map key are re-keyed from the key, and
// actions the application no longer knows are dropped. User overrides
// on surviving entries are preserved.
func (c *Configuration) Normalize() {
	catalog := shortcut.DefaultCatalog()

	if c.Shortcuts == nil {
		c.Shortcuts = catalog
		return
	}

	normalized := make(map[string]*shortcut.Spec, len(catalog))
	for id, def := range catalog {
		if loaded, ok := c.Shortcuts[id]; ok && loaded != nil {
			spec := loaded.Clone()
			spec.ActionID = id
			// Display metadata and defaults follow the application, not
			// the file; only the override is user data.
			spec.Title = def.Title
			spec.Description = def.Description
			spec.Category = def.Category
			spec.Default = def.Default
			normalized[id] = spec
			continue
		}
		normalized[id] = def
	}
	c.Shortcuts = normalized
}

// Clone returns a deep copy of the configuration.
func (c Configuration) Clone() Configuration {
	out := c
	out.Shortcuts = make(map[string]*shortcut.Spec, len(c.Shortcuts))
	for id, spec := range c.Shortcuts {
		out.Shortcuts[id] = spec.Clone()
	}
	return out
}
