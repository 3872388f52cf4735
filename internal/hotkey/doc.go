// Package hotkey owns the process-wide set of OS global-hotkey
// registrations.
//
// The Registrar interface abstracts the OS facility; SystemRegistrar
// implements it on golang.design/x/hotkey. The Synchronizer performs
// full resync passes: unregister everything, then re-register the
// current catalog, absorbing per-key failures into a SyncReport so one
// conflicting binding never prevents the rest of the catalog from
// activating.
//
// No other package registers or unregisters hotkeys directly.
package hotkey
