//go:build windows

package wininput

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"github.com/GoblinRules/SlickClick/internal/core/hotkeys"
)

const (
	hotkeyID = 1

	wmHotkey = 0x0312
	pmRemove = 0x0001
)

// Registrar binds a single global hotkey through RegisterHotKey. All methods
// must run on the thread that registered the key, which the listener
// guarantees by locking its goroutine to one OS thread.
type Registrar struct {
	registered bool
}

func NewRegistrar() *Registrar {
	return &Registrar{}
}

func (r *Registrar) Register(name string) error {
	if hotkeys.IsModifier(name) {
		return fmt.Errorf("%q: %w", name, hotkeys.ErrUnknownKey)
	}
	vk, ok := KeyToVK(name)
	if !ok {
		return fmt.Errorf("%q: %w", name, hotkeys.ErrUnknownKey)
	}

	ret, _, callErr := procRegisterHotKey.Call(0, hotkeyID, 0, uintptr(vk))
	if ret == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return fmt.Errorf("RegisterHotKey %q: %w", name, callErr)
		}
		return fmt.Errorf("RegisterHotKey %q failed", name)
	}
	r.registered = true
	return nil
}

func (r *Registrar) Unregister() {
	if !r.registered {
		return
	}
	_, _, _ = procUnregisterHotKey.Call(0, hotkeyID)
	r.registered = false
}

// Poll drains the thread message queue for WM_HOTKEY and reports whether the
// hotkey fired. When nothing is pending it sleeps for one quantum so the
// pump does not spin.
func (r *Registrar) Poll(quantum time.Duration) (bool, error) {
	fired := false
	var msg message
	for {
		ret, _, _ := procPeekMessageW.Call(
			uintptr(unsafe.Pointer(&msg)),
			0,
			uintptr(wmHotkey),
			uintptr(wmHotkey),
			uintptr(pmRemove),
		)
		if ret == 0 {
			break
		}
		if msg.Message == wmHotkey && msg.WParam == hotkeyID {
			fired = true
		}
	}
	if !fired {
		time.Sleep(quantum)
	}
	return fired, nil
}
