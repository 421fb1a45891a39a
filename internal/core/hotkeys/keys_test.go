package hotkeys

import "testing"

func TestCanonicalizeKnownNames(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"f6", "F6"},
		{"F24", "F24"},
		{"a", "A"},
		{"Z", "Z"},
		{"7", "7"},
		{"space", "SPACE"},
		{"Return", "ENTER"},
		{"enter", "ENTER"},
		{"esc", "ESCAPE"},
		{"Page_Up", "PAGEUP"},
		{"Prior", "PAGEUP"},
		{"next", "PAGEDOWN"},
		{"KP_5", "NUMPAD5"},
		{"kp0", "NUMPAD0"},
		{"numpad9", "NUMPAD9"},
		{"scroll_lock", "SCROLL_LOCK"},
		{"ScrollLock", "SCROLL_LOCK"},
		{"caps_lock", "CAPS_LOCK"},
		{"  tab  ", "TAB"},
		{"Control_L", "CTRL"},
		{"shift", "SHIFT"},
		{"super", "WIN"},
	}
	for _, c := range cases {
		got, ok := Canonicalize(c.raw)
		if !ok {
			t.Fatalf("Canonicalize(%q) not recognized", c.raw)
		}
		if got != c.want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", c.raw, got, c.want)
		}
	}
}

func TestCanonicalizeRejectsUnknownNames(t *testing.T) {
	for _, raw := range []string{"", "  ", "F0", "F25", "Fn", "?", "banana", "KP_X"} {
		if got, ok := Canonicalize(raw); ok {
			t.Fatalf("Canonicalize(%q) = %q, want rejection", raw, got)
		}
	}
}

func TestIsModifier(t *testing.T) {
	for _, name := range []string{"SHIFT", "CTRL", "ALT", "WIN"} {
		if !IsModifier(name) {
			t.Fatalf("IsModifier(%q) = false", name)
		}
	}
	for _, name := range []string{"F6", "A", "SPACE", "ENTER"} {
		if IsModifier(name) {
			t.Fatalf("IsModifier(%q) = true", name)
		}
	}
}
