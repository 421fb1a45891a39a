//go:build !windows

package main

import (
	"github.com/go-vgo/robotgo"

	"fyne.io/fyne/v2"

	"github.com/GoblinRules/SlickClick/internal/adapters/robotinput"
	"github.com/GoblinRules/SlickClick/internal/core/hotkeys"
)

func newPointer() pointerDevice {
	return robotinput.NewPointer()
}

func newRegistrar() hotkeys.Registrar {
	return robotinput.NewRegistrar()
}

func newKeySource() hotkeys.KeySource {
	return robotinput.NewCapture()
}

func screenSize() (int, int) {
	return robotgo.GetScreenSize()
}

// placeOverlay is best effort off Windows: overlays show where the window
// manager puts them and are not click-through.
func placeOverlay(win fyne.Window, x, y, width, height int, clickThrough bool) {
	win.Resize(fyne.NewSize(float32(width), float32(height)))
}
