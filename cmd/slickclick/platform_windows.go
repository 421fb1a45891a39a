//go:build windows

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/GoblinRules/SlickClick/internal/adapters/wininput"
	"github.com/GoblinRules/SlickClick/internal/core/hotkeys"
)

func newPointer() pointerDevice {
	return wininput.NewPointer()
}

func newRegistrar() hotkeys.Registrar {
	return wininput.NewRegistrar()
}

func newKeySource() hotkeys.KeySource {
	return wininput.NewCapture()
}

func screenSize() (int, int) {
	return wininput.ScreenSize()
}

// placeOverlay moves a borderless window to screen coordinates and keeps it
// on top. Click-through overlays also stop intercepting mouse input.
func placeOverlay(win fyne.Window, x, y, width, height int, clickThrough bool) {
	native, ok := win.(driver.NativeWindow)
	if !ok {
		return
	}
	native.RunNative(func(ctx any) {
		wc, ok := ctx.(driver.WindowsWindowContext)
		if !ok {
			return
		}
		if clickThrough {
			wininput.MakeClickThrough(wc.HWND)
		}
		wininput.PlaceWindow(wc.HWND, x, y, width, height)
	})
}
