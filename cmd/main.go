package main

import (
	"fmt"
	"os"

	"github.com/pedrobritto/gvt-tracker/internal/core/reps"
	"github.com/pedrobritto/gvt-tracker/internal/core/stopwatch"
	"github.com/pedrobritto/gvt-tracker/internal/logging"
	"github.com/pedrobritto/gvt-tracker/internal/platform"
	"github.com/pedrobritto/gvt-tracker/internal/storage"
	"github.com/pedrobritto/gvt-tracker/internal/ui/preferences"
	"github.com/pedrobritto/gvt-tracker/internal/ui/tray"
	"github.com/pedrobritto/gvt-tracker/internal/ui/workout"

	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"go.uber.org/zap"
)

const (
	appName  = "GVTTracker"
	appID    = "com.gvttracker.app"
	appTitle = "GVT Tracker"
)

func main() {
	logger, err := logging.New(os.Getenv("GVT_DEBUG") != "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		logger.Warn("single instance", zap.Error(err))
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(theme.HistoryIcon())

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		logger.Warn("load settings failed, using defaults", zap.Error(err))
	}

	view := workout.New(fyneApp, appTitle)

	newTracker := func(settings preferences.Settings) {
		tracker := reps.New(settings.RepsConfig())
		tracker.SetLogger(logger)
		if settings.PersistReps {
			tracker.SetStore(storage.NewRepStore(fyneApp.Preferences(), logger))
		}
		view.Reps.Bind(tracker)
		tracker.Initialize()
	}

	watch := stopwatch.New(settings.StopwatchConfig(), stopwatch.Config{})
	watch.SetLogger(logger)
	view.Stopwatch.Bind(watch)

	var trayManager *tray.Manager
	repsText := reps.FormatCount(0)
	clockText := stopwatch.Format(0).Text(false)
	refreshTray := func() {
		if trayManager == nil {
			return
		}
		trayManager.SetStatus(tray.Status(repsText, view.Reps.Tracker().Target(), clockText))
	}
	view.Reps.SetOnRender(func(text string) {
		repsText = text
		refreshTray()
	})
	view.Stopwatch.SetOnRender(func(event stopwatch.Event) {
		// The tray shows whole seconds so the menu is rebuilt at most once a second.
		clockText = stopwatch.Format(event.Elapsed).Text(false)
		if trayManager != nil {
			trayManager.SetRunning(event.Running())
		}
		refreshTray()
	})

	newTracker(settings)
	view.Stopwatch.Listen(watch.Subscribe(16))

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		if err := storage.SaveSettings(appName, updated); err != nil {
			logger.Warn("save settings failed", zap.Error(err))
		}
		if trackerChanged(settings, updated) {
			newTracker(updated)
		}
		watch.UpdateConfig(updated.StopwatchConfig())
		view.Stopwatch.ApplyConfig(watch.Config())
		if trayManager != nil {
			trayManager.SetRestartMode(updated.RestartOnStart)
		}
		settings = updated
		logger.Info("settings applied",
			zap.Int("target", updated.TargetReps),
			zap.Bool("persist", updated.PersistReps),
			zap.Bool("millis", updated.ShowMillis),
			zap.Bool("restart", updated.RestartOnStart))
	})

	quit := func() {
		watch.Close()
		fyneApp.Quit()
	}

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        view.Show,
			OnPressStart:  view.Stopwatch.PressStart,
			OnResetClock:  view.Stopwatch.ResetClock,
			OnAddRep:      view.Reps.AddRep,
			OnResetReps:   view.Reps.ResetReps,
			OnPreferences: prefsWindow.Show,
			OnQuit:        quit,
		})
		trayManager.SetRestartMode(settings.RestartOnStart)
		desktopApp.SetSystemTrayIcon(fyneApp.Icon())
		view.HideOnClose()
		refreshTray()
	} else {
		logger.Info("system tray unsupported, closing the window quits")
		view.SetMaster()
	}

	view.Show()
	fyneApp.Run()
	watch.Close()
}

// trackerChanged reports whether updated settings need a fresh tracker.
// Target and cooldown are fixed for a tracker's lifetime.
func trackerChanged(current, updated preferences.Settings) bool {
	return current.RepsConfig() != updated.RepsConfig() || current.PersistReps != updated.PersistReps
}
