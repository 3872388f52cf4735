package settings

import (
	"encoding/json"
	"os"
	"testing"
)

const legacyDoc = `{
  "llm": "chatgpt",
  "systemPrompt": "old prompt",
  "retryPrompt": "old retry",
  "screenWidth": 500,
  "screenHeight": 400,
  "focusable": true,
  "showBanner": false,
  "opacity": 0.9,
  "shortcuts": {
    "screenshot": {
      "key": "screenshot",
      "title": "Take Screenshot",
      "description": "Capture the current screen",
      "category": "core",
      "defaultShortcut": {"mac": "Cmd+1", "windows": "Ctrl+1"},
      "customShortcut": {"mac": "Cmd+Shift+1"}
    },
    "quit": {
      "key": "quit",
      "title": "Quit",
      "category": "system",
      "defaultShortcut": {"mac": "Cmd+Q", "windows": "Ctrl+W"}
    }
  }
}`

func TestIsLegacy(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want bool
	}{
		{"camelCase top level", `{"systemPrompt": "x"}`, true},
		{"camelCase shortcut fields", `{"shortcuts": {"quit": {"defaultShortcut": {"mac": "Cmd+Q"}}}}`, true},
		{"current shape", `{"system_prompt": "x", "shortcuts": {"quit": {"default_shortcut": {"mac": "Cmd+Q"}}}}`, false},
		{"empty", `{}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLegacy([]byte(tt.doc)); got != tt.want {
				t.Errorf("IsLegacy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMigrateLegacy(t *testing.T) {
	out, err := MigrateLegacy([]byte(legacyDoc))
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}

	var cfg Configuration
	if err := json.Unmarshal(out, &cfg); err != nil {
		t.Fatalf("migrated output is not parseable: %v", err)
	}

	if cfg.SystemPrompt != "old prompt" {
		t.Errorf("SystemPrompt = %q, want old prompt", cfg.SystemPrompt)
	}
	if cfg.RetryPrompt != "old retry" {
		t.Errorf("RetryPrompt = %q, want old retry", cfg.RetryPrompt)
	}
	if cfg.Opacity != 0.9 {
		t.Errorf("Opacity = %v, want 0.9", cfg.Opacity)
	}
	if cfg.ShowBanner {
		t.Error("ShowBanner = true, want false")
	}

	shot := cfg.Shortcuts["screenshot"]
	if shot == nil {
		t.Fatal("screenshot entry missing after migration")
	}
	if shot.Default.Mac != "Cmd+1" || shot.Default.Windows != "Ctrl+1" {
		t.Errorf("defaults = %+v, want Cmd+1/Ctrl+1", shot.Default)
	}
	if shot.Custom == nil || shot.Custom.Mac == nil || *shot.Custom.Mac != "Cmd+Shift+1" {
		t.Error("custom override lost in migration")
	}
	if shot.Custom.Windows != nil {
		t.Error("windows override fabricated from nothing")
	}

	quit := cfg.Shortcuts["quit"]
	if quit == nil {
		t.Fatal("quit entry missing after migration")
	}
	if quit.Custom != nil {
		t.Error("quit gained an override it never had")
	}
}

func TestMigrateLegacyHalfMigrated(t *testing.T) {
	// A file that already carries some current names keeps them.
	doc := `{"systemPrompt": "legacy", "retry_prompt": "already current"}`
	out, err := MigrateLegacy([]byte(doc))
	if err != nil {
		t.Fatalf("MigrateLegacy() error = %v", err)
	}

	var cfg Configuration
	if err := json.Unmarshal(out, &cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.SystemPrompt != "legacy" || cfg.RetryPrompt != "already current" {
		t.Errorf("cfg = %+v, want both fields carried over", cfg)
	}
}

func TestMigrateLegacyInvalidJSON(t *testing.T) {
	if _, err := MigrateLegacy([]byte(`{not json`)); err == nil {
		t.Error("MigrateLegacy() accepted invalid JSON")
	}
}

func TestLegacyLoadRewritesFile(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)
	if err := os.MkdirAll(s.Dir(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.Path(), []byte(legacyDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Shortcuts["screenshot"].Custom == nil {
		t.Error("override lost through legacy load")
	}

	// The file on disk is rewritten in the current shape.
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if IsLegacy(data) {
		t.Error("settings file still legacy after load")
	}
}
