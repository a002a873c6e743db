package preferences

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	target       *widget.Entry
	cooldown     *widget.Entry
	cooldownOn   *widget.Check
	persist      *widget.Check
	millis       *widget.Check
	restart      *widget.Check
	wallClock    *widget.Check
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("GVT Tracker Settings")

	target := widget.NewEntry()
	cooldown := widget.NewEntry()

	cooldownOn := widget.NewCheck("Lock the add button after each rep", nil)
	persist := widget.NewCheck("Remember reps between launches", nil)
	millis := widget.NewCheck("Show milliseconds", nil)
	restart := widget.NewCheck("Start button restarts the clock", nil)
	wallClock := widget.NewCheck("Measure wall-clock time (no drift)", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Reps", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Target reps"), target),
		cooldownOn,
		container.NewHBox(widget.NewLabel("Lock for"), cooldown, widget.NewLabel("sec")),
		persist,
		widget.NewLabelWithStyle("Stopwatch", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		millis,
		restart,
		wallClock,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 360))

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		target:       target,
		cooldown:     cooldown,
		cooldownOn:   cooldownOn,
		persist:      persist,
		millis:       millis,
		restart:      restart,
		wallClock:    wallClock,
		saveButton:   saveButton,
		cancelButton: cancelButton,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.target.SetText(strconv.Itoa(settings.TargetReps))
	prefs.cooldown.SetText(strconv.Itoa(int(settings.Cooldown / time.Second)))
	prefs.cooldownOn.SetChecked(settings.CooldownEnabled)
	prefs.persist.SetChecked(settings.PersistReps)
	prefs.millis.SetChecked(settings.ShowMillis)
	prefs.restart.SetChecked(settings.RestartOnStart)
	prefs.wallClock.SetChecked(settings.WallClock)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if reps, ok := parseNonNegativeInt(prefs.target.Text); ok {
		settings.TargetReps = reps
	}
	if seconds, ok := parseNonNegativeInt(prefs.cooldown.Text); ok && seconds > 0 {
		settings.Cooldown = time.Duration(seconds) * time.Second
	}

	settings.CooldownEnabled = prefs.cooldownOn.Checked
	settings.PersistReps = prefs.persist.Checked
	settings.ShowMillis = prefs.millis.Checked
	settings.RestartOnStart = prefs.restart.Checked
	settings.WallClock = prefs.wallClock.Checked

	prefs.UpdateSettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parseNonNegativeInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return 0, false
	}
	return parsed, true
}
