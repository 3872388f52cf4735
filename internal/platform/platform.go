// Package platform identifies the binding platform family for the host.
//
// Shortcut bindings are stored per platform family: "mac" for macOS and
// "windows" for everything else. The only behavior that depends on the
// family is the meta-modifier downgrade in the combo parser.
package platform

import "runtime"

// Platform is a binding platform family.
type Platform string

const (
	// Mac is the macOS binding family.
	Mac Platform = "mac"

	// Windows is the binding family for Windows and any other non-mac host.
	Windows Platform = "windows"
)

// Of returns the platform family for the given mac fact.
func Of(isMac bool) Platform {
	if isMac {
		return Mac
	}
	return Windows
}

// IsMac reports whether the current host is running macOS.
func IsMac() bool {
	return runtime.GOOS == "darwin"
}

// FromName parses a platform family name. Unrecognized names map to
// Windows, matching the stored binding layout (mac or everything else).
func FromName(name string) Platform {
	if name == string(Mac) {
		return Mac
	}
	return Windows
}
