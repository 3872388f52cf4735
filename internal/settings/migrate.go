package settings

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// topLevelRenames maps legacy camelCase keys to their current names.
// Keys already in the current shape pass through untouched.
var topLevelRenames = map[string]string{
	"llm":          "llm",
	"systemPrompt": "system_prompt",
	"retryPrompt":  "retry_prompt",
	"screenWidth":  "screen_width",
	"screenHeight": "screen_height",
	"focusable":    "focusable",
	"showBanner":   "show_banner",
	"opacity":      "opacity",
}

// IsLegacy reports whether raw JSON settings use the Electron-era
// camelCase shape.
func IsLegacy(data []byte) bool {
	if gjson.GetBytes(data, "systemPrompt").Exists() {
		return true
	}
	legacy := false
	gjson.GetBytes(data, "shortcuts").ForEach(func(_, entry gjson.Result) bool {
		if entry.Get("defaultShortcut").Exists() || entry.Get("customShortcut").Exists() {
			legacy = true
			return false
		}
		return true
	})
	return legacy
}

// MigrateLegacy rewrites a legacy settings document into the current
// shape. Unknown top-level keys are dropped; shortcut entries keep
// their overrides.
func MigrateLegacy(data []byte) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("legacy settings are not valid JSON")
	}

	out := []byte(`{}`)
	var err error

	for legacy, current := range topLevelRenames {
		v := gjson.GetBytes(data, legacy)
		if !v.Exists() {
			// The current name may already be present (half-migrated
			// file); carry it over too.
			v = gjson.GetBytes(data, current)
			if !v.Exists() {
				continue
			}
		}
		out, err = sjson.SetBytes(out, current, v.Value())
		if err != nil {
			return nil, fmt.Errorf("migrating %q: %w", legacy, err)
		}
	}

	var forEachErr error
	gjson.GetBytes(data, "shortcuts").ForEach(func(id, entry gjson.Result) bool {
		out, forEachErr = migrateShortcut(out, id.String(), entry)
		return forEachErr == nil
	})
	if forEachErr != nil {
		return nil, forEachErr
	}

	return out, nil
}

func migrateShortcut(out []byte, id string, entry gjson.Result) ([]byte, error) {
	base := "shortcuts." + id
	var err error

	copyField := func(legacy, current string) {
		if err != nil {
			return
		}
		v := entry.Get(legacy)
		if !v.Exists() {
			v = entry.Get(current)
		}
		if v.Exists() {
			out, err = sjson.SetBytes(out, base+"."+current, v.Value())
		}
	}

	copyField("key", "key")
	copyField("title", "title")
	copyField("description", "description")
	copyField("category", "category")
	copyField("defaultShortcut.mac", "default_shortcut.mac")
	copyField("defaultShortcut.windows", "default_shortcut.windows")
	copyField("customShortcut.mac", "custom_shortcut.mac")
	copyField("customShortcut.windows", "custom_shortcut.windows")

	if err != nil {
		return nil, fmt.Errorf("migrating shortcut %q: %w", id, err)
	}
	return out, nil
}
