package hotkey

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/glimmer-app/glimmer/internal/shortcut"
)

// SyncReport is the outcome of one registration pass.
type SyncReport struct {
	// PassID correlates the pass across log lines.
	PassID string

	// Registered and Failed count per-action outcomes. Unbound and
	// unparseable actions are skipped and counted in neither.
	Registered int
	Failed     int

	// FailedActions lists the action ids whose registration the OS
	// rejected, in catalog order.
	FailedActions []string

	// Warnings carries advisory notes (known-conflict combos). A
	// warning does not imply the registration failed.
	Warnings []string
}

// Synchronizer keeps the OS registrations consistent with the shortcut
// catalog.
//
// Every Sync performs a full reset: unregister everything, then
// re-register the current specs. No incremental diffing is attempted;
// the coarse approach trivially avoids stale or duplicate registrations
// at the cost of a brief window with zero hotkeys active during each
// pass. The whole unregister/register sequence runs under one mutex so
// concurrent Sync calls cannot interleave and strand handles; callers
// never observe a partially-registered state as a steady state.
type Synchronizer struct {
	mu        sync.Mutex
	registrar Registrar
	sink      Sink

	// handles maps action id to the live OS handle. Rebuilt wholesale
	// on every pass, never persisted.
	handles map[string]Handle
}

// NewSynchronizer creates a synchronizer in the idle state.
func NewSynchronizer(registrar Registrar, sink Sink) *Synchronizer {
	return &Synchronizer{
		registrar: registrar,
		sink:      sink,
		handles:   make(map[string]Handle),
	}
}

// Sync re-registers the OS hotkeys for the given spec snapshot.
//
// Per-key rejections are absorbed into the report: one conflicting
// binding never aborts the loop. Only a facility-level failure (the
// unregister-all capability itself unreachable) is returned as an
// error, in which case no re-registration is attempted and stale
// bindings may remain.
func (s *Synchronizer) Sync(specs []*shortcut.Spec, isMac bool) (SyncReport, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	report := SyncReport{PassID: uuid.NewString()}

	if err := s.registrar.UnregisterAll(); err != nil {
		return report, fmt.Errorf("%w: unregister all: %v", ErrCapabilityUnavailable, err)
	}
	s.handles = make(map[string]Handle, len(specs))

	for _, spec := range specs {
		text, ok := shortcut.Resolve(spec, isMac)
		if !ok {
			// Intentionally unbound; not a failure.
			continue
		}

		combo, ok := shortcut.CanonicalCombo(text, isMac)
		if !ok {
			continue
		}

		for _, c := range CheckCombo(combo, isMac) {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("%s: %s is commonly claimed by %s", spec.ActionID, combo, c.Name))
		}

		h, err := s.registrar.Register(combo, spec.ActionID, s.sink)
		if err != nil {
			report.Failed++
			report.FailedActions = append(report.FailedActions, spec.ActionID)
			continue
		}

		s.handles[spec.ActionID] = h
		report.Registered++
	}

	return report, nil
}

// UnregisterAll releases every OS handle without re-registering,
// returning the synchronizer to the idle state.
func (s *Synchronizer) UnregisterAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.registrar.UnregisterAll(); err != nil {
		return fmt.Errorf("%w: unregister all: %v", ErrCapabilityUnavailable, err)
	}
	s.handles = make(map[string]Handle)
	return nil
}

// Handles returns a copy of the live action-to-handle mapping.
func (s *Synchronizer) Handles() map[string]Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]Handle, len(s.handles))
	for id, h := range s.handles {
		out[id] = h
	}
	return out
}

// Active returns the number of live registrations.
func (s *Synchronizer) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}
