package shortcut

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/glimmer-app/glimmer/internal/platform"
)

// ErrNotFound is returned when an operation references an action id
// absent from the store.
var ErrNotFound = errors.New("shortcut action not found")

// SyncOutcome is the audit record of the most recent registration pass.
// Only counts are kept here; handles live in the synchronizer.
type SyncOutcome struct {
	Registered int
	Failed     int
	At         time.Time
}

// Store owns the runtime mapping of action id to Spec.
//
// One lock guards the whole catalog. The catalog is small and mutation
// is rare (user edits in a settings screen), so there is no per-entry
// locking. No method holds the lock across an OS call: callers snapshot
// the specs and release before registering anything.
type Store struct {
	mu    sync.RWMutex
	specs map[string]*Spec

	lastSync SyncOutcome
	hasSync  bool
}

// NewStore creates a store seeded with the default catalog.
func NewStore() *Store {
	return NewStoreFrom(DefaultCatalog())
}

// NewStoreFrom creates a store from an existing catalog, typically the
// one loaded from the settings file. The specs are deep-copied so the
// caller's map stays independent.
func NewStoreFrom(specs map[string]*Spec) *Store {
	s := &Store{specs: make(map[string]*Spec, len(specs))}
	for id, spec := range specs {
		s.specs[id] = spec.Clone()
	}
	return s
}

// Len returns the number of actions in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.specs)
}

// Get returns a copy of the spec for an action id.
func (s *Store) Get(actionID string) (*Spec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spec, ok := s.specs[actionID]
	if !ok {
		return nil, ErrNotFound
	}
	return spec.Clone(), nil
}

// Snapshot returns deep copies of all specs ordered by action id. The
// snapshot is safe to use after the lock is released, which is how the
// synchronizer consumes the catalog.
func (s *Store) Snapshot() []*Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.specs))
	for id := range s.specs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	specs := make([]*Spec, 0, len(ids))
	for _, id := range ids {
		specs = append(specs, s.specs[id].Clone())
	}
	return specs
}

// Catalog returns a deep copy of the catalog map, keyed by action id.
// Used when persisting the configuration.
func (s *Store) Catalog() map[string]*Spec {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*Spec, len(s.specs))
	for id, spec := range s.specs {
		out[id] = spec.Clone()
	}
	return out
}

// UpdateOverride sets the user override for one platform of an action.
func (s *Store) UpdateOverride(actionID string, p platform.Platform, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := s.specs[actionID]
	if !ok {
		return ErrNotFound
	}
	spec.SetOverride(p, text)
	return nil
}

// ResetOverrides removes all user overrides for an action, restoring
// its defaults. Resetting an action with no override is a no-op.
func (s *Store) ResetOverrides(actionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	spec, ok := s.specs[actionID]
	if !ok {
		return ErrNotFound
	}
	spec.ClearOverrides()
	return nil
}

// Replace swaps the whole catalog, used when the settings file is
// reloaded from disk.
func (s *Store) Replace(specs map[string]*Spec) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.specs = make(map[string]*Spec, len(specs))
	for id, spec := range specs {
		s.specs[id] = spec.Clone()
	}
}

// RecordSync stores the outcome counts of a registration pass.
func (s *Store) RecordSync(registered, failed int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSync = SyncOutcome{Registered: registered, Failed: failed, At: time.Now()}
	s.hasSync = true
}

// LastSync returns the most recent registration outcome, if any.
func (s *Store) LastSync() (SyncOutcome, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync, s.hasSync
}
