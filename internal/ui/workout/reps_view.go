package workout

import (
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/reps"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// RepsView binds a Tracker to its display and controls. Any of the exported
// objects may be nil; operations touching a nil object are skipped.
type RepsView struct {
	Count  *canvas.Text
	Target *canvas.Text
	Add    *widget.Button
	Reset  *widget.Button

	tracker   *reps.Tracker
	cooldowns int
	onRender  func(text string)
	afterFunc func(time.Duration, func())
	runOnMain func(func())
}

// NewRepsView creates the default rep counter objects.
func NewRepsView() *RepsView {
	count := canvas.NewText("00", theme.Color(theme.ColorNameForeground))
	count.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	count.TextSize = 72
	count.Alignment = fyne.TextAlignCenter

	target := canvas.NewText("/ 00", theme.Color(theme.ColorNameDisabled))
	target.TextStyle = fyne.TextStyle{Monospace: true}
	target.TextSize = 28

	view := &RepsView{
		Count:  count,
		Target: target,
		Add:    widget.NewButtonWithIcon("Add rep", theme.ContentAddIcon(), nil),
		Reset:  widget.NewButtonWithIcon("Reset", theme.ContentUndoIcon(), nil),
		afterFunc: func(delay time.Duration, callback func()) {
			time.AfterFunc(delay, callback)
		},
		runOnMain: fyne.Do,
	}
	view.Add.Importance = widget.HighImportance
	return view
}

// SetOnRender registers a hook called with every rendered count.
func (view *RepsView) SetOnRender(handler func(text string)) {
	view.onRender = handler
}

// SetText implements reps.Display.
func (view *RepsView) SetText(text string) {
	if view.Count != nil {
		view.Count.Text = text
		view.Count.Refresh()
	}
	if view.onRender != nil {
		view.onRender(text)
	}
}

// Bind attaches tracker, replacing any previous one, and wires the controls.
func (view *RepsView) Bind(tracker *reps.Tracker) {
	if view.tracker != nil {
		view.tracker.SetDisplay(nil)
	}
	view.tracker = tracker
	// Timers started for the previous tracker must not unlock the button.
	view.cooldowns++
	if tracker == nil {
		return
	}
	tracker.SetDisplay(view)

	if view.Target != nil {
		view.Target.Text = "/ " + reps.FormatCount(tracker.Target())
		view.Target.Refresh()
	}
	if view.Add != nil {
		view.Add.OnTapped = view.AddRep
		view.Add.Enable()
	}
	if view.Reset != nil {
		view.Reset.OnTapped = view.ResetReps
	}
}

// Tracker returns the bound tracker.
func (view *RepsView) Tracker() *reps.Tracker {
	return view.tracker
}

// AddRep handles the increment trigger. It is inert while the add control
// is cooling down.
func (view *RepsView) AddRep() {
	if view.tracker == nil {
		return
	}
	if view.Add != nil && view.Add.Disabled() {
		return
	}
	view.tracker.AddRep()
	view.tracker.Render()
	view.startCooldown()
}

// ResetReps handles the reset trigger.
func (view *RepsView) ResetReps() {
	if view.tracker == nil {
		return
	}
	view.tracker.ResetReps()
	view.tracker.Render()
}

func (view *RepsView) startCooldown() {
	cooldown := view.tracker.Cooldown()
	if cooldown <= 0 || view.Add == nil {
		return
	}
	view.cooldowns++
	generation := view.cooldowns
	button := view.Add
	button.Disable()
	view.afterFunc(cooldown, func() {
		view.runOnMain(func() {
			if view.cooldowns == generation {
				button.Enable()
			}
		})
	})
}
