package hotkeys

import (
	"strconv"
	"strings"
)

// Canonical key names are the stable identifiers used for settings
// persistence and for OS registration lookup: printable characters are a
// single uppercase letter or digit, function keys are "F" + number, and the
// remaining keys come from the fixed table below.

var namedKeys = map[string]struct{}{
	"SPACE":       {},
	"ENTER":       {},
	"ESCAPE":      {},
	"TAB":         {},
	"INSERT":      {},
	"DELETE":      {},
	"HOME":        {},
	"END":         {},
	"PAGEUP":      {},
	"PAGEDOWN":    {},
	"UP":          {},
	"DOWN":        {},
	"LEFT":        {},
	"RIGHT":       {},
	"NUMPAD0":     {},
	"NUMPAD1":     {},
	"NUMPAD2":     {},
	"NUMPAD3":     {},
	"NUMPAD4":     {},
	"NUMPAD5":     {},
	"NUMPAD6":     {},
	"NUMPAD7":     {},
	"NUMPAD8":     {},
	"NUMPAD9":     {},
	"PAUSE":       {},
	"SCROLL_LOCK": {},
	"CAPS_LOCK":   {},
}

var keyAliases = map[string]string{
	"RETURN":     "ENTER",
	"ESC":        "ESCAPE",
	"PAGE_UP":    "PAGEUP",
	"PRIOR":      "PAGEUP",
	"PAGE_DOWN":  "PAGEDOWN",
	"NEXT":       "PAGEDOWN",
	"SCROLLLOCK": "SCROLL_LOCK",
	"CAPSLOCK":   "CAPS_LOCK",

	"SHIFT_L":   "SHIFT",
	"SHIFT_R":   "SHIFT",
	"LSHIFT":    "SHIFT",
	"RSHIFT":    "SHIFT",
	"CONTROL":   "CTRL",
	"CONTROL_L": "CTRL",
	"CONTROL_R": "CTRL",
	"CTRL_L":    "CTRL",
	"CTRL_R":    "CTRL",
	"LCTRL":     "CTRL",
	"RCTRL":     "CTRL",
	"ALT_L":     "ALT",
	"ALT_R":     "ALT",
	"ALT_GR":    "ALT",
	"LALT":      "ALT",
	"RALT":      "ALT",
	"SUPER":     "WIN",
	"SUPER_L":   "WIN",
	"SUPER_R":   "WIN",
	"META":      "WIN",
	"META_L":    "WIN",
	"META_R":    "WIN",
	"CMD":       "WIN",
	"COMMAND":   "WIN",
	"LWIN":      "WIN",
	"RWIN":      "WIN",
}

var modifierNames = map[string]struct{}{
	"SHIFT": {},
	"CTRL":  {},
	"ALT":   {},
	"WIN":   {},
}

// Canonicalize maps a raw key name from any input source (settings file,
// capture backend, UI key event) to its canonical form. The second return is
// false when the name is not recognized at all.
func Canonicalize(raw string) (string, bool) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if name == "" {
		return "", false
	}
	name = strings.ReplaceAll(name, " ", "_")
	if canon, ok := keyAliases[name]; ok {
		name = canon
	}

	if _, ok := namedKeys[name]; ok {
		return name, true
	}
	if _, ok := modifierNames[name]; ok {
		return name, true
	}

	if len(name) == 1 {
		c := name[0]
		if (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			return name, true
		}
		return "", false
	}

	if rest, ok := strings.CutPrefix(name, "F"); ok && isDigits(rest) {
		n, err := strconv.Atoi(rest)
		if err == nil && n >= 1 && n <= 24 {
			return "F" + strconv.Itoa(n), true
		}
		return "", false
	}

	// Numeric keypad spellings: KP_5, KP5, KEYPAD5.
	for _, prefix := range []string{"KP_", "KP", "KEYPAD"} {
		if rest, ok := strings.CutPrefix(name, prefix); ok && len(rest) == 1 && isDigits(rest) {
			return "NUMPAD" + rest, true
		}
	}

	return "", false
}

// IsModifier reports whether name is a bare modifier key. Modifiers are
// recognized by capture sources but are never registrable hotkeys.
func IsModifier(name string) bool {
	_, ok := modifierNames[name]
	return ok
}

func isDigits(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
