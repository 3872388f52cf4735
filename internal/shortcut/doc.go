// Package shortcut defines the configurable shortcut catalog.
//
// Each action the overlay can perform is described by a Spec: display
// metadata plus a default binding per platform family and an optional
// user override. The package also provides the combo parser that turns
// free-text shortcut descriptions ("⌘ + Shift + ↑") into the canonical
// token form accepted by the OS hotkey facility, and the lock-guarded
// Store that owns the catalog at runtime.
//
// Nothing in this package touches the operating system. Registration of
// parsed combos is the hotkey package's job.
package shortcut
