package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/GoblinRules/SlickClick/internal/config"
	"github.com/GoblinRules/SlickClick/internal/core/clicker"
	"github.com/GoblinRules/SlickClick/internal/core/hotkeys"
	"github.com/GoblinRules/SlickClick/internal/notify"
	"github.com/GoblinRules/SlickClick/internal/updater"
)

// pointerDevice extends the click injector with cursor readout for the
// location picker toolbar.
type pointerDevice interface {
	clicker.Pointer
	CursorPos() (int, int, error)
}

var mouseButtons = []string{"Left", "Right", "Middle"}

var clickTypes = []string{"Single", "Double"}

var repeatChoices = []string{"Until Stopped", "50 times", "100 times", "500 times", "Custom..."}

// controller wires the engine, the hotkey listener and the notification
// surfaces to the main window.
type controller struct {
	app    fyne.App
	window fyne.Window
	logger *slog.Logger

	engine   *clicker.Engine
	listener *hotkeys.Listener
	notifier *notify.Notifier
	checker  *updater.Checker
	pointer  pointerDevice
	osd      *osdIndicator
	preview  *dryRunPreview
	picker   *locationPicker

	mu          sync.Mutex
	settings    config.Settings
	locations   []clicker.Point
	targetFixed bool

	hoursEntry *widget.Entry
	minsEntry  *widget.Entry
	secsEntry  *widget.Entry
	msEntry    *widget.Entry

	buttonSelect *widget.Select
	typeSelect   *widget.Select
	repeatSelect *widget.Select

	hotkeyBadge *widget.Button
	statusLabel *widget.Label
	countLabel  *widget.Label
	startBtn    *widget.Button
	targetText  *canvas.Text
}

func runUI(logger *slog.Logger) error {
	fApp := app.NewWithID("com.goblinrules.slickclick")
	fApp.Settings().SetTheme(newSlickTheme())

	c := &controller{
		app:      fApp,
		logger:   logger,
		settings: config.Load(),
		pointer:  newPointer(),
	}
	c.notifier = notify.New(c.settings.ShowToast)
	c.checker = updater.NewChecker(logger)

	engine, err := clicker.NewEngine(c.pointer, logger)
	if err != nil {
		return err
	}
	engine.SetCallbacks(c.onStatusChange, c.onCountUpdate)
	c.engine = engine

	listener, err := hotkeys.NewListener(newRegistrar(), newKeySource(), c.toggleClicking, logger)
	if err != nil {
		return err
	}
	listener.SetHotkey(c.settings.Hotkey)
	c.listener = listener

	c.window = fApp.NewWindow(fmt.Sprintf("%s v%s", appName, appVersion))
	c.window.Resize(fyne.NewSize(460, 520))
	c.window.SetFixedSize(true)
	c.window.CenterOnScreen()

	c.osd = newOSDIndicator(fApp)
	c.preview = newDryRunPreview(fApp)
	c.picker = newLocationPicker(fApp, c.pointer, c.addLocation, c.undoLocation)

	c.window.SetContent(c.buildContent())
	c.window.SetMainMenu(c.buildMenu())
	c.window.SetCloseIntercept(c.quit)

	logger.Info("Starting hotkey listener", "hotkey", c.settings.Hotkey)
	listener.Start()

	c.window.ShowAndRun()
	return nil
}

// ----------------------------------------------------------------------
// Layout
// ----------------------------------------------------------------------

func (c *controller) buildContent() fyne.CanvasObject {
	accentLine := canvas.NewRectangle(colorAccent)
	accentLine.SetMinSize(fyne.NewSize(0, 3))

	header := canvas.NewText(appName, colorAccent)
	header.TextStyle = fyne.TextStyle{Bold: true}
	header.TextSize = 18
	version := canvas.NewText("v"+appVersion, colorTextMuted)
	version.TextSize = 10
	headerRow := container.NewHBox(header, version)

	intervalRow := c.buildIntervalRow()

	c.buttonSelect = widget.NewSelect(mouseButtons, func(value string) {
		c.updateSettings(func(s *config.Settings) { s.MouseButton = value })
	})
	c.typeSelect = widget.NewSelect(clickTypes, func(value string) {
		c.updateSettings(func(s *config.Settings) { s.ClickType = value })
	})
	c.repeatSelect = widget.NewSelect(repeatChoices, c.onRepeatChoice)

	c.hotkeyBadge = widget.NewButton(c.settings.Hotkey, c.beginHotkeyCapture)
	c.hotkeyBadge.Importance = widget.HighImportance

	selects := container.NewGridWithColumns(2,
		labeledControl("MOUSE BUTTON", c.buttonSelect),
		labeledControl("CLICK TYPE", c.typeSelect),
		labeledControl("REPEAT", c.repeatSelect),
		labeledControl("HOTKEY", c.hotkeyBadge),
	)

	c.statusLabel = widget.NewLabel("● Stopped")
	c.countLabel = widget.NewLabel("Clicks: 0")
	statusRow := container.NewBorder(nil, nil, c.statusLabel, c.countLabel)

	c.startBtn = widget.NewButton("▶ Start", c.toggleClicking)
	c.startBtn.Importance = widget.HighImportance

	c.targetText = canvas.NewText("Target: Cursor position", colorTextMuted)
	c.targetText.TextSize = 11
	c.targetText.Alignment = fyne.TextAlignCenter

	content := container.NewVBox(
		accentLine,
		headerRow,
		widget.NewSeparator(),
		labeledControl("CLICK INTERVAL", intervalRow),
		selects,
		statusRow,
		c.startBtn,
		c.targetText,
	)

	c.applySettingsToWidgets()
	return container.NewPadded(content)
}

func (c *controller) buildIntervalRow() fyne.CanvasObject {
	newIntervalEntry := func(initial int, apply func(s *config.Settings, v int)) *widget.Entry {
		entry := widget.NewEntry()
		entry.SetText(strconv.Itoa(initial))
		entry.OnChanged = func(text string) {
			value, err := strconv.Atoi(strings.TrimSpace(text))
			if err != nil || value < 0 {
				return
			}
			c.updateSettings(func(s *config.Settings) { apply(s, value) })
		}
		return entry
	}

	c.hoursEntry = newIntervalEntry(c.settings.IntervalHours, func(s *config.Settings, v int) { s.IntervalHours = v })
	c.minsEntry = newIntervalEntry(c.settings.IntervalMins, func(s *config.Settings, v int) { s.IntervalMins = v })
	c.secsEntry = newIntervalEntry(c.settings.IntervalSecs, func(s *config.Settings, v int) { s.IntervalSecs = v })
	c.msEntry = newIntervalEntry(c.settings.IntervalMS, func(s *config.Settings, v int) { s.IntervalMS = v })

	return container.NewGridWithColumns(4,
		labeledControl("HRS", c.hoursEntry),
		labeledControl("MIN", c.minsEntry),
		labeledControl("SEC", c.secsEntry),
		labeledControl("MS", c.msEntry),
	)
}

func (c *controller) buildMenu() *fyne.MainMenu {
	options := fyne.NewMenu("Options",
		fyne.NewMenuItem("Click Options...", c.showClickOptions),
		fyne.NewMenuItem("Repeat Options...", c.showRepeatOptions),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Pick Locations...", c.openPicker),
		fyne.NewMenuItem("View Locations...", c.showLocationsViewer),
		fyne.NewMenuItem("Dry Run Preview", c.runDryPreview),
		fyne.NewMenuItem("Clear Locations", c.clearLocations),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", c.showSettingsDialog),
	)
	help := fyne.NewMenu("Help",
		fyne.NewMenuItem("Check for Updates", c.checkForUpdates),
		fyne.NewMenuItem("About", c.showAbout),
	)
	return fyne.NewMainMenu(options, help)
}

func labeledControl(label string, control fyne.CanvasObject) fyne.CanvasObject {
	text := canvas.NewText(label, colorTextMuted)
	text.TextSize = 10
	text.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewVBox(text, control)
}

// applySettingsToWidgets pushes the loaded settings into the controls
// without re-triggering their change handlers into a save loop.
func (c *controller) applySettingsToWidgets() {
	st := c.snapshotSettings()
	c.buttonSelect.SetSelected(st.MouseButton)
	c.typeSelect.SetSelected(st.ClickType)
	c.repeatSelect.SetSelected(repeatChoiceFor(st))
	c.hotkeyBadge.SetText(st.Hotkey)
}

func repeatChoiceFor(st config.Settings) string {
	if st.RepeatMode != config.RepeatFinite {
		return "Until Stopped"
	}
	choice := fmt.Sprintf("%d times", st.RepeatCount)
	for _, preset := range repeatChoices {
		if choice == preset {
			return choice
		}
	}
	return "Custom..."
}

func (c *controller) onRepeatChoice(value string) {
	switch value {
	case "Until Stopped":
		c.updateSettings(func(s *config.Settings) { s.RepeatMode = config.RepeatInfinite })
	case "Custom...":
		c.showRepeatOptions()
	default:
		count, err := strconv.Atoi(strings.Fields(value)[0])
		if err != nil {
			c.updateSettings(func(s *config.Settings) { s.RepeatMode = config.RepeatInfinite })
			return
		}
		c.updateSettings(func(s *config.Settings) {
			s.RepeatMode = config.RepeatFinite
			s.RepeatCount = count
		})
	}
}

// ----------------------------------------------------------------------
// Settings state
// ----------------------------------------------------------------------

func (c *controller) snapshotSettings() config.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *controller) updateSettings(apply func(*config.Settings)) {
	c.mu.Lock()
	apply(&c.settings)
	st := c.settings
	c.mu.Unlock()

	c.notifier.SetEnabled(st.ShowToast)
	if err := config.Save(st); err != nil {
		c.logger.Error("Failed to save settings", "err", err)
	}
}

func (c *controller) buildJob() clicker.Job {
	c.mu.Lock()
	st := c.settings
	fixed := c.targetFixed
	targets := append([]clicker.Point(nil), c.locations...)
	c.mu.Unlock()

	job := clicker.Job{
		Interval: st.Interval(),
		Repeat:   st.RepeatLimit(),
		Button:   clicker.Button(st.MouseButton),
		Double:   st.ClickType == "Double",
	}
	if fixed {
		job.Targets = targets
	}
	return job
}

// ----------------------------------------------------------------------
// Actions
// ----------------------------------------------------------------------

// toggleClicking starts or stops a run. Reached from the start button, the
// global hotkey and nowhere else.
func (c *controller) toggleClicking() {
	if c.engine.Running() {
		c.engine.Stop()
		return
	}
	c.engine.Start(c.buildJob())
}

func (c *controller) beginHotkeyCapture() {
	if c.listener.Capturing() {
		return
	}
	c.hotkeyBadge.SetText("Press a key...")
	c.listener.BeginCapture(func(name string) {
		c.listener.SetHotkey(name)
		c.updateSettings(func(s *config.Settings) { s.Hotkey = name })
		fyne.Do(func() {
			c.hotkeyBadge.SetText(name)
		})
	})
}

func (c *controller) openPicker() {
	c.picker.show(len(c.snapshotLocations()))
}

func (c *controller) runDryPreview() {
	locations := c.snapshotLocations()
	if len(locations) == 0 {
		return
	}
	interval := int(c.snapshotSettings().Interval().Milliseconds())
	// Stagger with the configured interval, clamped for usability.
	stagger := interval
	if stagger < 200 {
		stagger = 200
	}
	if stagger > 1000 {
		stagger = 1000
	}
	c.preview.show(locations, stagger, 4000)
}

func (c *controller) snapshotLocations() []clicker.Point {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]clicker.Point(nil), c.locations...)
}

func (c *controller) addLocation(x, y int) {
	c.mu.Lock()
	c.locations = append(c.locations, clicker.Point{X: x, Y: y})
	c.targetFixed = true
	count := len(c.locations)
	c.mu.Unlock()

	c.logger.Info("Location added", "x", x, "y", y, "total", count)
	fyne.Do(c.refreshTargetText)
}

func (c *controller) undoLocation() {
	c.mu.Lock()
	if len(c.locations) > 0 {
		c.locations = c.locations[:len(c.locations)-1]
	}
	c.mu.Unlock()
	fyne.Do(c.refreshTargetText)
}

func (c *controller) removeLocation(index int) {
	c.mu.Lock()
	if index >= 0 && index < len(c.locations) {
		c.locations = append(c.locations[:index], c.locations[index+1:]...)
	}
	c.mu.Unlock()
	c.refreshTargetText()
}

func (c *controller) clearLocations() {
	c.mu.Lock()
	c.locations = nil
	c.targetFixed = false
	c.mu.Unlock()
	c.refreshTargetText()
}

func (c *controller) setTargetFixed(fixed bool) {
	c.mu.Lock()
	c.targetFixed = fixed
	c.mu.Unlock()
	c.refreshTargetText()
}

// refreshTargetText must run on the UI thread.
func (c *controller) refreshTargetText() {
	c.mu.Lock()
	count := len(c.locations)
	fixed := c.targetFixed
	c.mu.Unlock()

	if count == 0 || !fixed {
		c.targetText.Text = "Target: Cursor position"
		c.targetText.Color = colorTextMuted
	} else {
		plural := ""
		if count != 1 {
			plural = "s"
		}
		c.targetText.Text = fmt.Sprintf("Target: %d fixed location%s  ●", count, plural)
		c.targetText.Color = colorAccent
	}
	c.targetText.Refresh()
}

func (c *controller) checkForUpdates() {
	c.checker.Check(appVersion, func(result updater.Result) {
		fyne.Do(func() {
			c.showUpdateResult(result)
		})
		if result.Err == nil && !result.UpToDate {
			c.notifier.UpdateAvailable(result.Latest)
		}
	})
}

// ----------------------------------------------------------------------
// Engine callbacks (arrive on engine goroutines)
// ----------------------------------------------------------------------

func (c *controller) onStatusChange(running bool) {
	st := c.snapshotSettings()
	if st.ShowToast {
		if running {
			c.notifier.Started(st.Hotkey)
		} else {
			c.notifier.Stopped(c.engine.Clicks())
		}
	}

	fyne.Do(func() {
		if running {
			c.statusLabel.SetText("● Running")
			c.startBtn.SetText("■ Stop")
			c.startBtn.Importance = widget.SuccessImportance
		} else {
			c.statusLabel.SetText("● Stopped")
			c.startBtn.SetText("▶ Start")
			c.startBtn.Importance = widget.HighImportance
		}
		c.startBtn.Refresh()

		if st.ShowOSD && running {
			c.osd.show()
		} else {
			c.osd.hide()
		}
	})
}

// onCountUpdate throttles label refreshes: every count up to 10, then every
// tenth one.
func (c *controller) onCountUpdate(count int) {
	if count%10 != 0 && count > 10 {
		return
	}
	fyne.Do(func() {
		c.countLabel.SetText(fmt.Sprintf("Clicks: %d", count))
	})
}

// ----------------------------------------------------------------------
// Shutdown
// ----------------------------------------------------------------------

func (c *controller) quit() {
	st := c.snapshotSettings()
	if err := config.Save(st); err != nil {
		c.logger.Error("Failed to save settings on exit", "err", err)
	}
	c.engine.Stop()
	c.listener.Stop()
	c.osd.hide()
	c.logger.Info("Shutting down")
	c.app.Quit()
}
