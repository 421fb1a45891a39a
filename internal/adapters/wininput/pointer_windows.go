//go:build windows

package wininput

import (
	"fmt"
	"syscall"
	"unsafe"

	"github.com/GoblinRules/SlickClick/internal/core/clicker"
)

const (
	inputMouse = 0

	mouseeventfLeftDown   = 0x0002
	mouseeventfLeftUp     = 0x0004
	mouseeventfRightDown  = 0x0008
	mouseeventfRightUp    = 0x0010
	mouseeventfMiddleDown = 0x0020
	mouseeventfMiddleUp   = 0x0040
)

// Pointer injects synthetic mouse input through SendInput and positions the
// cursor with SetCursorPos.
type Pointer struct{}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) MoveTo(x, y int) error {
	ret, _, callErr := procSetCursorPos.Call(uintptr(x), uintptr(y))
	if ret == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return fmt.Errorf("SetCursorPos: %w", callErr)
		}
		return fmt.Errorf("SetCursorPos(%d, %d) failed", x, y)
	}
	return nil
}

func (p *Pointer) Click(button clicker.Button, presses int) error {
	if presses < 1 {
		return nil
	}

	var down, up uint32
	switch button {
	case clicker.ButtonLeft:
		down, up = mouseeventfLeftDown, mouseeventfLeftUp
	case clicker.ButtonRight:
		down, up = mouseeventfRightDown, mouseeventfRightUp
	case clicker.ButtonMiddle:
		down, up = mouseeventfMiddleDown, mouseeventfMiddleUp
	default:
		return fmt.Errorf("unknown mouse button %q", button)
	}

	inputs := make([]input, 0, presses*2)
	for i := 0; i < presses; i++ {
		inputs = append(inputs,
			input{Type: inputMouse, Mi: mouseInput{DwFlags: down}},
			input{Type: inputMouse, Mi: mouseInput{DwFlags: up}},
		)
	}

	sent, _, callErr := procSendInput.Call(
		uintptr(len(inputs)),
		uintptr(unsafe.Pointer(&inputs[0])),
		unsafe.Sizeof(inputs[0]),
	)
	if sent != uintptr(len(inputs)) {
		if callErr != nil && callErr != syscall.Errno(0) {
			return callErr
		}
		return fmt.Errorf("SendInput sent %d of %d inputs", sent, len(inputs))
	}
	return nil
}

// CursorPos reports the current cursor location in screen coordinates.
func (p *Pointer) CursorPos() (int, int, error) {
	var pt point
	ret, _, callErr := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, fmt.Errorf("GetCursorPos: %w", callErr)
		}
		return 0, 0, fmt.Errorf("GetCursorPos failed")
	}
	return int(pt.X), int(pt.Y), nil
}
