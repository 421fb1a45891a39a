//go:build !windows

package wininput

import (
	"fmt"
	"time"

	"github.com/GoblinRules/SlickClick/internal/core/clicker"
)

var errNotWindows = fmt.Errorf("windows input adapter is only available on Windows")

type Registrar struct{}

func NewRegistrar() *Registrar {
	return &Registrar{}
}

func (r *Registrar) Register(name string) error {
	return errNotWindows
}

func (r *Registrar) Unregister() {}

func (r *Registrar) Poll(quantum time.Duration) (bool, error) {
	return false, errNotWindows
}

type Pointer struct{}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) MoveTo(x, y int) error {
	return errNotWindows
}

func (p *Pointer) Click(button clicker.Button, presses int) error {
	return errNotWindows
}

func (p *Pointer) CursorPos() (int, int, error) {
	return 0, 0, errNotWindows
}

type Capture struct{}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) NextKey(cancel <-chan struct{}) (string, error) {
	return "", errNotWindows
}

func MakeClickThrough(handle uintptr) {}

func PlaceWindow(handle uintptr, x, y, width, height int) {}

func ScreenSize() (int, int) {
	return 0, 0
}
