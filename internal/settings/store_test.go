package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/glimmer-app/glimmer/internal/platform"
	"github.com/glimmer-app/glimmer/internal/shortcut"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM != "chatgpt" {
		t.Errorf("LLM = %q, want chatgpt", cfg.LLM)
	}
	if len(cfg.Shortcuts) != len(shortcut.DefaultCatalog()) {
		t.Errorf("shortcuts = %d entries, want full catalog", len(cfg.Shortcuts))
	}

	// Loading must not create the file; the first save is user-driven.
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("Load() created the settings file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg := Default()
	cfg.Opacity = 0.8
	cfg.Shortcuts["screenshot"].SetOverride(platform.Mac, "Cmd+Shift+4")

	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Opacity != 0.8 {
		t.Errorf("Opacity = %v, want 0.8", loaded.Opacity)
	}
	got, _ := shortcut.Resolve(loaded.Shortcuts["screenshot"], true)
	if got != "Cmd+Shift+4" {
		t.Errorf("screenshot mac binding = %q, want override", got)
	}
}

func TestLoadNormalizesCatalog(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	// A file with one stale action and one missing action.
	cfg := Default()
	delete(cfg.Shortcuts, "record")
	cfg.Shortcuts["obsolete"] = &shortcut.Spec{ActionID: "obsolete", Category: shortcut.CategoryCore}
	if err := s.Save(cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := loaded.Shortcuts["record"]; !ok {
		t.Error("missing catalog action not back-filled")
	}
	if _, ok := loaded.Shortcuts["obsolete"]; ok {
		t.Error("unknown action survived normalization")
	}
}

func TestLoadTOMLVariant(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	tomlDoc := `
llm = "grok"
system_prompt = "p"
retry_prompt = "r"
screen_width = 640
screen_height = 480
focusable = true
show_banner = false
opacity = 0.5
`
	if err := os.WriteFile(filepath.Join(dir, "settings.toml"), []byte(tomlDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := s.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.LLM != "grok" || cfg.ScreenWidth != 640 {
		t.Errorf("cfg = %+v, want TOML values", cfg)
	}
	// Shortcuts absent from the file are back-filled.
	if len(cfg.Shortcuts) != len(shortcut.DefaultCatalog()) {
		t.Errorf("shortcuts = %d entries, want full catalog", len(cfg.Shortcuts))
	}
}

func TestReset(t *testing.T) {
	s := NewStore(t.TempDir())

	cfg := Default()
	cfg.LLM = "deepseek"
	if err := s.Save(cfg); err != nil {
		t.Fatal(err)
	}

	reset, err := s.Reset()
	if err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if reset.LLM != "chatgpt" {
		t.Errorf("LLM after reset = %q, want chatgpt", reset.LLM)
	}

	// Reset persists to disk.
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	var onDisk Configuration
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatal(err)
	}
	if onDisk.LLM != "chatgpt" {
		t.Errorf("LLM on disk = %q, want chatgpt", onDisk.LLM)
	}
}

func TestConfigurationCloneIsDeep(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Shortcuts["screenshot"].SetOverride(platform.Mac, "Cmd+9")

	if cfg.Shortcuts["screenshot"].Custom != nil {
		t.Error("original mutated through clone")
	}
}
