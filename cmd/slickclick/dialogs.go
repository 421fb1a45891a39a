package main

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/GoblinRules/SlickClick/internal/config"
	"github.com/GoblinRules/SlickClick/internal/updater"
)

func (c *controller) showClickOptions() {
	st := c.snapshotSettings()

	buttonSel := widget.NewSelect(mouseButtons, nil)
	buttonSel.SetSelected(st.MouseButton)
	typeSel := widget.NewSelect(clickTypes, nil)
	typeSel.SetSelected(st.ClickType)

	form := []*widget.FormItem{
		widget.NewFormItem("Mouse Button", buttonSel),
		widget.NewFormItem("Click Type", typeSel),
	}
	dialog.ShowForm("Click Options", "Apply", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		c.updateSettings(func(s *config.Settings) {
			s.MouseButton = buttonSel.Selected
			s.ClickType = typeSel.Selected
		})
		c.applySettingsToWidgets()
	}, c.window)
}

func (c *controller) showRepeatOptions() {
	st := c.snapshotSettings()

	modeRadio := widget.NewRadioGroup([]string{"Repeat until stopped", "Repeat a fixed number of times"}, nil)
	if st.RepeatMode == config.RepeatFinite {
		modeRadio.SetSelected("Repeat a fixed number of times")
	} else {
		modeRadio.SetSelected("Repeat until stopped")
	}

	countEntry := widget.NewEntry()
	countEntry.SetText(strconv.Itoa(st.RepeatCount))

	form := []*widget.FormItem{
		widget.NewFormItem("Mode", modeRadio),
		widget.NewFormItem("Count", countEntry),
	}
	dialog.ShowForm("Repeat Options", "Apply", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		count, err := strconv.Atoi(strings.TrimSpace(countEntry.Text))
		if err != nil || count < 1 {
			count = st.RepeatCount
		}
		finite := modeRadio.Selected == "Repeat a fixed number of times"
		c.updateSettings(func(s *config.Settings) {
			if finite {
				s.RepeatMode = config.RepeatFinite
			} else {
				s.RepeatMode = config.RepeatInfinite
			}
			s.RepeatCount = count
		})
		c.applySettingsToWidgets()
	}, c.window)
}

func (c *controller) showSettingsDialog() {
	st := c.snapshotSettings()

	targetRadio := widget.NewRadioGroup([]string{"Click at cursor position", "Click at saved locations"}, nil)
	c.mu.Lock()
	fixed := c.targetFixed
	c.mu.Unlock()
	if fixed {
		targetRadio.SetSelected("Click at saved locations")
	} else {
		targetRadio.SetSelected("Click at cursor position")
	}

	toastCheck := widget.NewCheck("Show start/stop notifications", nil)
	toastCheck.SetChecked(st.ShowToast)
	osdCheck := widget.NewCheck("Show on-screen indicator while clicking", nil)
	osdCheck.SetChecked(st.ShowOSD)

	hotkeyBtn := widget.NewButton(st.Hotkey, nil)
	hotkeyBtn.OnTapped = func() {
		if c.listener.Capturing() {
			return
		}
		hotkeyBtn.SetText("Press a key...")
		c.listener.BeginCapture(func(name string) {
			c.listener.SetHotkey(name)
			c.updateSettings(func(s *config.Settings) { s.Hotkey = name })
			fyne.Do(func() {
				hotkeyBtn.SetText(name)
				c.hotkeyBadge.SetText(name)
			})
		})
	}

	form := []*widget.FormItem{
		widget.NewFormItem("Hotkey", hotkeyBtn),
		widget.NewFormItem("Click Target", targetRadio),
		widget.NewFormItem("", toastCheck),
		widget.NewFormItem("", osdCheck),
	}
	dialog.ShowForm("Settings", "Apply", "Cancel", form, func(ok bool) {
		if !ok {
			return
		}
		c.updateSettings(func(s *config.Settings) {
			s.ShowToast = toastCheck.Checked
			s.ShowOSD = osdCheck.Checked
		})
		c.setTargetFixed(targetRadio.Selected == "Click at saved locations")
	}, c.window)
}

func (c *controller) showLocationsViewer() {
	locations := c.snapshotLocations()

	items := make([]string, len(locations))
	for i, p := range locations {
		items[i] = fmt.Sprintf("#%d: (%d, %d)", i+1, p.X, p.Y)
	}

	selected := -1
	list := widget.NewList(
		func() int { return len(items) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(items[i])
		},
	)
	list.OnSelected = func(id widget.ListItemID) { selected = id }

	var popup dialog.Dialog
	removeBtn := widget.NewButton("Remove Selected", func() {
		if selected < 0 {
			return
		}
		c.removeLocation(selected)
		popup.Hide()
		c.showLocationsViewer()
	})
	previewBtn := widget.NewButton("Dry Run Preview", func() {
		popup.Hide()
		c.runDryPreview()
	})

	content := container.NewBorder(nil, container.NewHBox(removeBtn, previewBtn), nil, nil, list)
	popup = dialog.NewCustom("Saved Locations", "Close", content, c.window)
	popup.Resize(fyne.NewSize(320, 340))
	popup.Show()
}

func (c *controller) showAbout() {
	title := canvas.NewText("⚡ "+appName, colorAccent)
	title.TextSize = 22
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.Alignment = fyne.TextAlignCenter

	version := canvas.NewText("Version "+appVersion, colorTextMuted)
	version.TextSize = 11
	version.Alignment = fyne.TextAlignCenter

	tagline := widget.NewLabel("Automatic Mouse Clicker")
	tagline.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(title, version, tagline)
	dialog.ShowCustom("About", "Close", content, c.window)
}

func (c *controller) showUpdateResult(result updater.Result) {
	switch {
	case result.Err != nil:
		dialog.ShowInformation("Update Check", "Could not check for updates.", c.window)
	case result.UpToDate:
		dialog.ShowInformation("Update Check", fmt.Sprintf("%s v%s is up to date.", appName, appVersion), c.window)
	default:
		dialog.ShowInformation("Update Available",
			fmt.Sprintf("Version %s is available.\n%s", result.Latest, result.URL), c.window)
	}
}
