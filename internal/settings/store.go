package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const (
	jsonFileName = "settings.json"
	tomlFileName = "settings.toml"
)

// Store reads and writes the configuration blob on disk.
type Store struct {
	dir string
}

// DefaultDir returns the per-user settings directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config dir: %w", err)
	}
	return filepath.Join(base, "glimmer"), nil
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the settings directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path returns the JSON settings file path, which is where saves go.
func (s *Store) Path() string {
	return filepath.Join(s.dir, jsonFileName)
}

// Load reads the configuration from disk. A missing file yields the
// defaults without creating anything — the first save is user-driven.
// Legacy-format JSON is migrated in place. The returned configuration
// is always normalized against the fixed action catalog.
func (s *Store) Load() (Configuration, error) {
	cfg, err := s.load()
	if err != nil {
		return Configuration{}, err
	}
	cfg.Normalize()
	return cfg, nil
}

func (s *Store) load() (Configuration, error) {
	data, err := os.ReadFile(s.Path())
	switch {
	case err == nil:
		return s.loadJSON(data)
	case errors.Is(err, os.ErrNotExist):
		// Fall through to the TOML variant.
	default:
		return Configuration{}, fmt.Errorf("reading settings file: %w", err)
	}

	data, err = os.ReadFile(filepath.Join(s.dir, tomlFileName))
	switch {
	case err == nil:
		var cfg Configuration
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Configuration{}, fmt.Errorf("parsing settings TOML: %w", err)
		}
		return cfg, nil
	case errors.Is(err, os.ErrNotExist):
		return Default(), nil
	default:
		return Configuration{}, fmt.Errorf("reading settings file: %w", err)
	}
}

func (s *Store) loadJSON(data []byte) (Configuration, error) {
	if IsLegacy(data) {
		migrated, err := MigrateLegacy(data)
		if err != nil {
			return Configuration{}, fmt.Errorf("migrating legacy settings: %w", err)
		}
		data = migrated

		var cfg Configuration
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Configuration{}, fmt.Errorf("parsing migrated settings: %w", err)
		}
		cfg.Normalize()
		// Rewrite in the current shape so migration runs once.
		if err := s.Save(cfg); err != nil {
			return Configuration{}, err
		}
		return cfg, nil
	}

	var cfg Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Configuration{}, fmt.Errorf("parsing settings JSON: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as pretty JSON, creating the settings
// directory if needed.
func (s *Store) Save(cfg Configuration) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating settings dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0o644); err != nil {
		return fmt.Errorf("writing settings file: %w", err)
	}
	return nil
}

// Reset writes the default configuration to disk and returns it.
func (s *Store) Reset() (Configuration, error) {
	cfg := Default()
	if err := s.Save(cfg); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}
