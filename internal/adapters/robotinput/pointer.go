//go:build !windows

// Package robotinput is the portable input adapter used where the native
// Windows one is unavailable. The pointer goes through robotgo, hotkey
// registration through golang.design/x/hotkey and key capture through gohook.
package robotinput

import (
	"fmt"

	"github.com/go-vgo/robotgo"

	"github.com/GoblinRules/SlickClick/internal/core/clicker"
)

type Pointer struct{}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) MoveTo(x, y int) error {
	robotgo.Move(x, y)
	return nil
}

func (p *Pointer) Click(button clicker.Button, presses int) error {
	if presses < 1 {
		return nil
	}

	var name string
	switch button {
	case clicker.ButtonLeft:
		name = "left"
	case clicker.ButtonRight:
		name = "right"
	case clicker.ButtonMiddle:
		name = "center"
	default:
		return fmt.Errorf("unknown mouse button %q", button)
	}

	if presses == 2 {
		robotgo.Click(name, true)
		return nil
	}
	for i := 0; i < presses; i++ {
		robotgo.Click(name)
	}
	return nil
}

// CursorPos reports the current cursor location in screen coordinates.
func (p *Pointer) CursorPos() (int, int, error) {
	x, y := robotgo.Location()
	return x, y, nil
}
