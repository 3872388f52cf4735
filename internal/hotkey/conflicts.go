package hotkey

import "github.com/glimmer-app/glimmer/internal/platform"

// Conflict describes a combo commonly claimed by another application or
// the OS itself. The list is advisory: registration is still attempted
// and the real answer comes from the OS.
type Conflict struct {
	Combo       string
	Name        string
	Description string
	Platform    platform.Platform // empty means any platform
}

var knownConflicts = []Conflict{
	{Combo: "Cmd+Space", Name: "Spotlight", Description: "macOS Spotlight search", Platform: platform.Mac},
	{Combo: "Cmd+Tab", Name: "App Switcher", Description: "macOS application switcher", Platform: platform.Mac},
	{Combo: "Cmd+H", Name: "Hide App", Description: "macOS hide-frontmost-application", Platform: platform.Mac},
	{Combo: "Cmd+Q", Name: "Quit App", Description: "macOS quit-frontmost-application", Platform: platform.Mac},
	{Combo: "Ctrl+Alt+Delete", Name: "Secure Attention", Description: "Windows secure attention sequence", Platform: platform.Windows},
	{Combo: "Ctrl+Escape", Name: "Start Menu", Description: "Windows Start menu", Platform: platform.Windows},
}

// CheckCombo returns the known conflicts for a canonical combo on the
// given host.
func CheckCombo(combo string, isMac bool) []Conflict {
	p := platform.Of(isMac)

	var out []Conflict
	for _, c := range knownConflicts {
		if c.Combo != combo {
			continue
		}
		if c.Platform != "" && c.Platform != p {
			continue
		}
		out = append(out, c)
	}
	return out
}
