package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
)

const (
	osdWidth  = 110
	osdHeight = 28
	osdMargin = 14
)

// osdIndicator is the small always-on-top "CLICKING" pill shown in the
// top-right corner of the screen while a run is active. The window is
// click-through so it never steals input from whatever is being clicked.
type osdIndicator struct {
	app     fyne.App
	win     fyne.Window
	visible bool
}

func newOSDIndicator(fApp fyne.App) *osdIndicator {
	return &osdIndicator{app: fApp}
}

// show must run on the UI thread.
func (o *osdIndicator) show() {
	if o.visible {
		return
	}

	if o.win == nil {
		o.win = newSplashWindow(o.app)
		bg := canvas.NewRectangle(colorAccent)
		text := canvas.NewText("● CLICKING", colorBackground)
		text.TextStyle = fyne.TextStyle{Bold: true}
		text.TextSize = 12
		text.Alignment = fyne.TextAlignCenter
		o.win.SetContent(container.NewStack(bg, container.NewCenter(text)))
	}

	o.win.Resize(fyne.NewSize(osdWidth, osdHeight))
	o.win.Show()

	screenW, _ := screenSize()
	placeOverlay(o.win, screenW-osdWidth-osdMargin, osdMargin, osdWidth, osdHeight, true)
	o.visible = true
}

// hide must run on the UI thread.
func (o *osdIndicator) hide() {
	if !o.visible {
		return
	}
	o.win.Hide()
	o.visible = false
}

// newSplashWindow returns a borderless window when the driver supports one,
// falling back to a plain window otherwise.
func newSplashWindow(fApp fyne.App) fyne.Window {
	if drv, ok := fApp.Driver().(desktop.Driver); ok {
		return drv.CreateSplashWindow()
	}
	return fApp.NewWindow("")
}
