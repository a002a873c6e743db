package workout

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Window is the main workout window holding both widgets.
type Window struct {
	window    fyne.Window
	Reps      *RepsView
	Stopwatch *StopwatchView
}

// New creates the workout window. It is not shown until Show is called.
func New(app fyne.App, title string) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	repsView := NewRepsView()
	stopwatchView := NewStopwatchView()

	repsRow := container.NewCenter(container.NewHBox(repsView.Count, repsView.Target))
	repsButtons := container.NewGridWithColumns(2, repsView.Add, repsView.Reset)

	colon := digitText(":")
	clockRow := container.NewCenter(container.NewHBox(
		stopwatchView.Minutes,
		colon,
		stopwatchView.Seconds,
		stopwatchView.millisDot,
		stopwatchView.Millis,
	))
	clockButtons := container.NewGridWithColumns(2, stopwatchView.Start, stopwatchView.Reset)

	content := container.NewVBox(
		sectionTitle("Reps"),
		repsRow,
		repsButtons,
		widget.NewSeparator(),
		sectionTitle("Rest"),
		clockRow,
		clockButtons,
	)
	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(360, 420))

	workout := &Window{
		window:    window,
		Reps:      repsView,
		Stopwatch: stopwatchView,
	}
	window.Canvas().SetOnTypedKey(workout.handleKey)
	window.Canvas().SetOnTypedRune(workout.handleRune)

	return workout
}

// Show displays the window and brings it to the front.
func (workout *Window) Show() {
	workout.window.Show()
	workout.window.RequestFocus()
}

// HideOnClose keeps the app alive in the tray when the window is closed.
func (workout *Window) HideOnClose() {
	workout.window.SetCloseIntercept(func() {
		workout.window.Hide()
	})
}

// SetMaster makes closing this window quit the app.
func (workout *Window) SetMaster() {
	workout.window.SetMaster()
}

func (workout *Window) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace:
		workout.Stopwatch.PressStart()
	case fyne.KeyReturn, fyne.KeyEnter:
		workout.Reps.AddRep()
	}
}

func (workout *Window) handleRune(r rune) {
	switch r {
	case '+':
		workout.Reps.AddRep()
	case 'x', 'X':
		workout.Reps.ResetReps()
	case 'r', 'R':
		workout.Stopwatch.ResetClock()
	}
}

func sectionTitle(text string) *canvas.Text {
	title := canvas.NewText(text, theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = 18
	title.Alignment = fyne.TextAlignCenter
	return title
}
