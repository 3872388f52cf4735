package shortcut

import (
	"github.com/glimmer-app/glimmer/internal/platform"
)

// Category groups actions for display in the settings screen.
type Category string

const (
	CategoryCore       Category = "core"
	CategoryNavigation Category = "navigation"
	CategoryMedia      Category = "media"
	CategorySystem     Category = "system"
	CategoryMovement   Category = "movement"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryCore, CategoryNavigation, CategoryMedia, CategorySystem, CategoryMovement:
		return true
	}
	return false
}

// PlatformBinding holds the default free-text shortcut description for
// each platform family. An empty string means no default hotkey on that
// platform.
type PlatformBinding struct {
	Mac     string `json:"mac" toml:"mac"`
	Windows string `json:"windows" toml:"windows"`
}

// Override holds user-set shortcut text per platform family. A nil
// field means the default applies on that platform.
type Override struct {
	Mac     *string `json:"mac,omitempty" toml:"mac,omitempty"`
	Windows *string `json:"windows,omitempty" toml:"windows,omitempty"`
}

// clone returns a deep copy of the override.
func (o *Override) clone() *Override {
	if o == nil {
		return nil
	}
	c := &Override{}
	if o.Mac != nil {
		v := *o.Mac
		c.Mac = &v
	}
	if o.Windows != nil {
		v := *o.Windows
		c.Windows = &v
	}
	return c
}

// empty reports whether no platform carries an override.
func (o *Override) empty() bool {
	return o == nil || (o.Mac == nil && o.Windows == nil)
}

// Spec describes one configurable action.
//
// ActionID is the stable identity of the action and never changes after
// the spec is created. The JSON field names match the persisted settings
// shape.
type Spec struct {
	ActionID    string          `json:"key" toml:"key"`
	Title       string          `json:"title" toml:"title"`
	Description string          `json:"description" toml:"description"`
	Category    Category        `json:"category" toml:"category"`
	Default     PlatformBinding `json:"default_shortcut" toml:"default_shortcut"`
	Custom      *Override       `json:"custom_shortcut,omitempty" toml:"custom_shortcut,omitempty"`
}

// Clone returns a deep copy of the spec.
func (s *Spec) Clone() *Spec {
	c := *s
	c.Custom = s.Custom.clone()
	return &c
}

// EffectiveBinding returns the shortcut text to register for the given
// platform: the override if present and non-empty, else the default if
// non-empty. The second return is false when the action is unbound on
// that platform.
func (s *Spec) EffectiveBinding(p platform.Platform) (string, bool) {
	if s.Custom != nil {
		var custom *string
		if p == platform.Mac {
			custom = s.Custom.Mac
		} else {
			custom = s.Custom.Windows
		}
		if custom != nil && *custom != "" {
			return *custom, true
		}
	}

	var def string
	if p == platform.Mac {
		def = s.Default.Mac
	} else {
		def = s.Default.Windows
	}
	if def == "" {
		return "", false
	}
	return def, true
}

// SetOverride sets the user override for one platform. The other
// platform's binding is unaffected. Setting the same value twice is a
// no-op.
func (s *Spec) SetOverride(p platform.Platform, text string) {
	if s.Custom == nil {
		s.Custom = &Override{}
	}
	if p == platform.Mac {
		s.Custom.Mac = &text
	} else {
		s.Custom.Windows = &text
	}
}

// ClearOverride removes the override for one platform. Clearing an
// absent override succeeds silently.
func (s *Spec) ClearOverride(p platform.Platform) {
	if s.Custom == nil {
		return
	}
	if p == platform.Mac {
		s.Custom.Mac = nil
	} else {
		s.Custom.Windows = nil
	}
	if s.Custom.empty() {
		s.Custom = nil
	}
}

// ClearOverrides removes the overrides for all platforms, restoring the
// defaults everywhere.
func (s *Spec) ClearOverrides() {
	s.Custom = nil
}

// Resolve computes the single effective shortcut text for a spec on the
// given host. An unbound action returns ok=false and must be skipped by
// the caller, not treated as an error.
func Resolve(s *Spec, isMac bool) (string, bool) {
	return s.EffectiveBinding(platform.Of(isMac))
}
