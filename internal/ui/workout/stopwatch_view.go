package workout

import (
	"image/color"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"
	"github.com/pedrobritto/gvt-tracker/internal/core/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// StopwatchView renders Stopwatch events. Any exported object may be nil.
type StopwatchView struct {
	Minutes *canvas.Text
	Seconds *canvas.Text
	Millis  *canvas.Text
	Start   *widget.Button
	Reset   *widget.Button

	millisDot *canvas.Text
	watch     *stopwatch.Stopwatch
	config    model.StopwatchConfig
	onRender  func(stopwatch.Event)
	runOnMain func(func())
}

// NewStopwatchView creates the default stopwatch objects.
func NewStopwatchView() *StopwatchView {
	view := &StopwatchView{
		Minutes:   digitText("00"),
		Seconds:   digitText("00"),
		Millis:    digitText("00"),
		millisDot: digitText("."),
		Start:     widget.NewButtonWithIcon(stopwatch.StartLabel(stopwatch.StateStopped), theme.MediaPlayIcon(), nil),
		Reset:     widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), nil),
		runOnMain: fyne.Do,
	}
	view.Millis.TextSize = 32
	view.millisDot.TextSize = 32
	return view
}

func digitText(text string) *canvas.Text {
	digits := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	digits.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	digits.TextSize = 56
	return digits
}

// SetOnRender registers a hook called after every render.
func (view *StopwatchView) SetOnRender(handler func(stopwatch.Event)) {
	view.onRender = handler
}

// Bind attaches watch and wires the controls.
func (view *StopwatchView) Bind(watch *stopwatch.Stopwatch) {
	view.watch = watch
	if view.Start != nil {
		view.Start.OnTapped = view.PressStart
	}
	if view.Reset != nil {
		view.Reset.OnTapped = view.ResetClock
	}
	if watch == nil {
		return
	}
	view.ApplyConfig(watch.Config())
}

// ApplyConfig switches display variants and re-renders the current state.
func (view *StopwatchView) ApplyConfig(config model.StopwatchConfig) {
	view.config = config
	for _, object := range []*canvas.Text{view.Millis, view.millisDot} {
		if object == nil {
			continue
		}
		if config.ShowMillis {
			object.Show()
		} else {
			object.Hide()
		}
	}
	if config.RestartOnStart && view.Start != nil {
		view.Start.SetText(stopwatch.StartLabel(stopwatch.StateStopped))
		view.Start.SetIcon(theme.MediaReplayIcon())
		view.Start.Importance = widget.MediumImportance
		view.Start.Refresh()
	}
	if view.watch != nil {
		view.Render(view.watch.Snapshot())
	}
}

// PressStart handles the start/stop or restart trigger.
func (view *StopwatchView) PressStart() {
	if view.watch != nil {
		view.watch.PressStart()
	}
}

// ResetClock handles the stopwatch reset trigger.
func (view *StopwatchView) ResetClock() {
	if view.watch != nil {
		view.watch.Reset()
	}
}

// Listen renders events on the UI goroutine until the channel closes.
func (view *StopwatchView) Listen(events <-chan stopwatch.Event) {
	go func() {
		for event := range events {
			view.runOnMain(func() {
				view.Render(event)
			})
		}
	}()
}

// Render writes the digits and, in toggle mode, the start control state.
func (view *StopwatchView) Render(event stopwatch.Event) {
	reading := stopwatch.Format(event.Elapsed)
	digitColor := theme.Color(theme.ColorNameForeground)
	if event.Running() {
		digitColor = theme.Color(theme.ColorNamePrimary)
	}
	setDigits(view.Minutes, reading.Minutes, digitColor)
	setDigits(view.Seconds, reading.Seconds, digitColor)
	if view.config.ShowMillis {
		setDigits(view.Millis, reading.Millis, digitColor)
	}

	if view.Start != nil && !view.config.RestartOnStart {
		view.Start.SetText(stopwatch.StartLabel(event.State))
		if event.Running() {
			view.Start.SetIcon(theme.MediaStopIcon())
			view.Start.Importance = widget.DangerImportance
		} else {
			view.Start.SetIcon(theme.MediaPlayIcon())
			view.Start.Importance = widget.HighImportance
		}
		view.Start.Refresh()
	}

	if view.onRender != nil {
		view.onRender(event)
	}
}

func setDigits(text *canvas.Text, value string, fill color.Color) {
	if text == nil {
		return
	}
	text.Text = value
	text.Color = fill
	text.Refresh()
}
