package shortcut

import (
	"strings"
)

// synonyms maps lowercased segment text to its canonical token. The
// meta modifier (cmd/command/⌘) is intentionally absent: it is the one
// platform-conditional mapping and is handled in canonicalToken.
var synonyms = map[string]string{
	"ctrl":    "Ctrl",
	"control": "Ctrl",
	"shift":   "Shift",
	"alt":     "Alt",
	"option":  "Alt",
	"⌥":       "Alt",
	"up":      "Up",
	"↑":       "Up",
	"down":    "Down",
	"↓":       "Down",
	"left":    "Left",
	"←":       "Left",
	"right":   "Right",
	"→":       "Right",
	"enter":   "Enter",
	"return":  "Enter",
	"↵":       "Enter",
	"esc":     "Escape",
	"escape":  "Escape",
	"space":   "Space",
	"tab":     "Tab",
}

// ParseCombo converts a free-text shortcut description into its
// canonical token sequence. Segments are split on '+', trimmed, and
// mapped case-insensitively through the synonym table; segment order
// from the source text is preserved. Unrecognized single characters
// become their upper-cased literal, longer segments are title-cased and
// passed through as literal key names, so parsing never fails — an
// unrepresentable combination is only discovered at registration time.
//
// Empty or whitespace-only input, or input with no non-empty segments,
// returns nil.
func ParseCombo(text string, isMac bool) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var tokens []string
	for _, seg := range strings.Split(text, "+") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		tokens = append(tokens, canonicalToken(seg, isMac))
	}
	return tokens
}

// CanonicalCombo parses text and joins the canonical tokens with '+',
// producing the form handed to the OS registration call. ok is false
// when the text yields no tokens.
func CanonicalCombo(text string, isMac bool) (string, bool) {
	tokens := ParseCombo(text, isMac)
	if len(tokens) == 0 {
		return "", false
	}
	return strings.Join(tokens, "+"), true
}

// canonicalToken maps one trimmed segment to its canonical token.
func canonicalToken(seg string, isMac bool) string {
	lower := strings.ToLower(seg)

	// Meta modifier downgrades to Ctrl on non-mac platforms.
	switch lower {
	case "cmd", "command", "⌘":
		if isMac {
			return "Cmd"
		}
		return "Ctrl"
	}

	if tok, ok := synonyms[lower]; ok {
		return tok
	}

	// Literal keys: single printable characters are upper-cased, longer
	// names are title-cased and passed through.
	runes := []rune(seg)
	if len(runes) == 1 {
		return strings.ToUpper(seg)
	}
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
