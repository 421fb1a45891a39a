//go:build !windows

package robotinput

import (
	"fmt"
	"time"

	"golang.design/x/hotkey"

	"github.com/GoblinRules/SlickClick/internal/core/hotkeys"
)

// Registrar registers a single modifier-free hotkey through
// golang.design/x/hotkey.
type Registrar struct {
	hk *hotkey.Hotkey
}

func NewRegistrar() *Registrar {
	return &Registrar{}
}

func (r *Registrar) Register(name string) error {
	key, ok := keyMap[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, hotkeys.ErrUnknownKey)
	}

	hk := hotkey.New(nil, key)
	if err := hk.Register(); err != nil {
		return fmt.Errorf("register %q: %w", name, err)
	}
	r.hk = hk
	return nil
}

func (r *Registrar) Unregister() {
	if r.hk == nil {
		return
	}
	_ = r.hk.Unregister()
	r.hk = nil
}

func (r *Registrar) Poll(quantum time.Duration) (bool, error) {
	if r.hk == nil {
		return false, fmt.Errorf("no hotkey registered")
	}
	select {
	case <-r.hk.Keydown():
		return true, nil
	case <-time.After(quantum):
		return false, nil
	}
}

// keyMap covers the canonical names this backend can register. Keys absent
// here are reported as unknown and the listener waits for a new binding.
var keyMap = map[string]hotkey.Key{
	"SPACE":  hotkey.KeySpace,
	"ENTER":  hotkey.KeyReturn,
	"ESCAPE": hotkey.KeyEscape,
	"TAB":    hotkey.KeyTab,
	"DELETE": hotkey.KeyDelete,
	"UP":     hotkey.KeyUp,
	"DOWN":   hotkey.KeyDown,
	"LEFT":   hotkey.KeyLeft,
	"RIGHT":  hotkey.KeyRight,

	"A": hotkey.KeyA,
	"B": hotkey.KeyB,
	"C": hotkey.KeyC,
	"D": hotkey.KeyD,
	"E": hotkey.KeyE,
	"F": hotkey.KeyF,
	"G": hotkey.KeyG,
	"H": hotkey.KeyH,
	"I": hotkey.KeyI,
	"J": hotkey.KeyJ,
	"K": hotkey.KeyK,
	"L": hotkey.KeyL,
	"M": hotkey.KeyM,
	"N": hotkey.KeyN,
	"O": hotkey.KeyO,
	"P": hotkey.KeyP,
	"Q": hotkey.KeyQ,
	"R": hotkey.KeyR,
	"S": hotkey.KeyS,
	"T": hotkey.KeyT,
	"U": hotkey.KeyU,
	"V": hotkey.KeyV,
	"W": hotkey.KeyW,
	"X": hotkey.KeyX,
	"Y": hotkey.KeyY,
	"Z": hotkey.KeyZ,

	"0": hotkey.Key0,
	"1": hotkey.Key1,
	"2": hotkey.Key2,
	"3": hotkey.Key3,
	"4": hotkey.Key4,
	"5": hotkey.Key5,
	"6": hotkey.Key6,
	"7": hotkey.Key7,
	"8": hotkey.Key8,
	"9": hotkey.Key9,

	"F1":  hotkey.KeyF1,
	"F2":  hotkey.KeyF2,
	"F3":  hotkey.KeyF3,
	"F4":  hotkey.KeyF4,
	"F5":  hotkey.KeyF5,
	"F6":  hotkey.KeyF6,
	"F7":  hotkey.KeyF7,
	"F8":  hotkey.KeyF8,
	"F9":  hotkey.KeyF9,
	"F10": hotkey.KeyF10,
	"F11": hotkey.KeyF11,
	"F12": hotkey.KeyF12,
	"F13": hotkey.KeyF13,
	"F14": hotkey.KeyF14,
	"F15": hotkey.KeyF15,
	"F16": hotkey.KeyF16,
	"F17": hotkey.KeyF17,
	"F18": hotkey.KeyF18,
	"F19": hotkey.KeyF19,
	"F20": hotkey.KeyF20,
}
