package main

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/GoblinRules/SlickClick/internal/core/clicker"
)

const (
	pickerWidth  = 420
	pickerHeight = 110
	pickerMargin = 12

	cursorPollEvery = 50 * time.Millisecond
	captureDotSize  = 52
	captureDotHold  = 1500 * time.Millisecond

	previewDotSize = 64
)

// locationPicker is the floating toolbar used to record click targets. It
// tracks the live cursor position and captures it on Space or Enter, so the
// user can line up a target anywhere on screen without the main window in
// the way.
type locationPicker struct {
	app     fyne.App
	pointer pointerDevice
	onPick  func(x, y int)
	onUndo  func()

	win         fyne.Window
	cursorLabel *widget.Label
	savedLabel  *widget.Label

	open   bool
	saved  int
	stopCh chan struct{}
}

func newLocationPicker(fApp fyne.App, pointer pointerDevice, onPick func(x, y int), onUndo func()) *locationPicker {
	return &locationPicker{app: fApp, pointer: pointer, onPick: onPick, onUndo: onUndo}
}

// show opens the toolbar near the top of the screen. Must run on the UI
// thread.
func (p *locationPicker) show(saved int) {
	if p.open {
		return
	}
	p.saved = saved

	p.win = newSplashWindow(p.app)
	p.cursorLabel = widget.NewLabel("Cursor: (0, 0)")
	p.savedLabel = widget.NewLabel(fmt.Sprintf("Saved: %d", saved))

	title := canvas.NewText("Pick Locations", colorAccent)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 14

	hint := canvas.NewText("Space/Enter: save    Ctrl+Z: undo    Esc: done", colorTextMuted)
	hint.TextSize = 10

	p.win.SetContent(container.NewPadded(container.NewVBox(
		title,
		container.NewHBox(p.cursorLabel, widget.NewSeparator(), p.savedLabel),
		hint,
	)))

	p.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
			p.capture()
		case fyne.KeyEscape:
			p.close()
		}
	})
	p.win.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { p.undo() },
	)

	p.win.Resize(fyne.NewSize(pickerWidth, pickerHeight))
	p.win.Show()

	screenW, _ := screenSize()
	placeOverlay(p.win, (screenW-pickerWidth)/2, pickerMargin, pickerWidth, pickerHeight, false)

	p.stopCh = make(chan struct{})
	p.open = true
	go p.pollCursor(p.stopCh)
}

func (p *locationPicker) pollCursor(stop <-chan struct{}) {
	ticker := time.NewTicker(cursorPollEvery)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			x, y, err := p.pointer.CursorPos()
			if err != nil {
				continue
			}
			fyne.Do(func() {
				p.cursorLabel.SetText(fmt.Sprintf("Cursor: (%d, %d)", x, y))
			})
		}
	}
}

func (p *locationPicker) capture() {
	x, y, err := p.pointer.CursorPos()
	if err != nil {
		return
	}
	p.saved++
	p.savedLabel.SetText(fmt.Sprintf("Saved: %d", p.saved))
	p.onPick(x, y)
	p.flashDot(x, y, p.saved)
}

func (p *locationPicker) undo() {
	if p.saved == 0 {
		return
	}
	p.saved--
	p.savedLabel.SetText(fmt.Sprintf("Saved: %d", p.saved))
	p.onUndo()
}

func (p *locationPicker) close() {
	if !p.open {
		return
	}
	close(p.stopCh)
	p.win.Close()
	p.win = nil
	p.open = false
}

// flashDot drops a numbered marker at the captured point for a moment so the
// user sees exactly what was recorded.
func (p *locationPicker) flashDot(x, y, number int) {
	dot := newDotWindow(p.app, number, captureDotSize, "")
	dot.Show()
	placeOverlay(dot, x-captureDotSize/2, y-captureDotSize/2, captureDotSize, captureDotSize, true)

	go func() {
		time.Sleep(captureDotHold)
		fyne.Do(dot.Hide)
	}()
}

// newDotWindow builds a small borderless marker window: a colored circle with
// the target number inside and an optional caption underneath.
func newDotWindow(fApp fyne.App, number, size int, caption string) fyne.Window {
	win := newSplashWindow(fApp)

	circle := canvas.NewCircle(dotPalette[(number-1)%len(dotPalette)])
	label := canvas.NewText(fmt.Sprintf("%d", number), colorBackground)
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = 16
	label.Alignment = fyne.TextAlignCenter

	content := container.NewStack(circle, container.NewCenter(label))
	if caption != "" {
		capText := canvas.NewText(caption, colorBackground)
		capText.TextSize = 9
		capText.Alignment = fyne.TextAlignCenter
		content = container.NewStack(circle, container.NewVBox(
			container.NewCenter(label),
			container.NewCenter(capText),
		))
	}

	win.SetContent(content)
	win.Resize(fyne.NewSize(float32(size), float32(size)))
	return win
}

// dryRunPreview walks the saved locations visually, placing a numbered dot on
// each in turn so the user can verify the click path without clicking.
type dryRunPreview struct {
	app     fyne.App
	running bool
}

func newDryRunPreview(fApp fyne.App) *dryRunPreview {
	return &dryRunPreview{app: fApp}
}

// show must run on the UI thread. staggerMS is the delay between dots and
// holdMS how long the full set stays up after the last one appears.
func (d *dryRunPreview) show(locations []clicker.Point, staggerMS, holdMS int) {
	if d.running || len(locations) == 0 {
		return
	}
	d.running = true

	go func() {
		dots := make([]fyne.Window, 0, len(locations))
		for i, loc := range locations {
			if i > 0 {
				time.Sleep(time.Duration(staggerMS) * time.Millisecond)
			}
			i, loc := i, loc
			fyne.DoAndWait(func() {
				caption := fmt.Sprintf("(%d, %d)", loc.X, loc.Y)
				dot := newDotWindow(d.app, i+1, previewDotSize, caption)
				dot.Show()
				placeOverlay(dot, loc.X-previewDotSize/2, loc.Y-previewDotSize/2, previewDotSize, previewDotSize, true)
				dots = append(dots, dot)
			})
		}

		time.Sleep(time.Duration(holdMS) * time.Millisecond)
		fyne.Do(func() {
			for _, dot := range dots {
				dot.Hide()
			}
			d.running = false
		})
	}()
}
