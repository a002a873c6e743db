package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnPressStart  func()
	OnResetClock  func()
	OnAddRep      func()
	OnResetReps   func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host        MenuHost
	statusItem  *fyne.MenuItem
	startItem   *fyne.MenuItem
	callbacks   Callbacks
	running     bool
	restartMode bool
	statusLabel string
	menu        *fyne.Menu
}

// New creates a tray manager with the provided callbacks.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:        host,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnPressStart))

	manager.refreshStart()
	manager.refreshStatus()
	return manager
}

// SetStatus updates the status label. The menu is only pushed when the
// label changes.
func (manager *Manager) SetStatus(status string) {
	if manager.statusLabel == status {
		return
	}
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning updates the stopwatch menu entry.
func (manager *Manager) SetRunning(running bool) {
	if manager.running == running {
		return
	}
	manager.running = running
	manager.refreshStart()
	manager.refreshMenu()
}

// SetRestartMode switches the stopwatch entry between toggle and restart wording.
func (manager *Manager) SetRestartMode(restart bool) {
	if manager.restartMode == restart {
		return
	}
	manager.restartMode = restart
	manager.refreshStart()
	manager.refreshMenu()
}

// Menu returns the menu last pushed to the tray.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// Status formats the tray status line for a rep count and a clock reading.
func Status(reps string, target int, clock string) string {
	return fmt.Sprintf("reps %s/%02d · %s", reps, target, clock)
}

func (manager *Manager) refreshStatus() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	manager.refreshMenu()
}

func (manager *Manager) refreshStart() {
	switch {
	case manager.restartMode:
		manager.startItem.Label = "Restart stopwatch"
	case manager.running:
		manager.startItem.Label = "Stop stopwatch"
	default:
		manager.startItem.Label = "Start stopwatch"
	}
}

func (manager *Manager) refreshMenu() {
	manager.menu = fyne.NewMenu("GVT Tracker",
		manager.statusItem,
		fyne.NewMenuItem("Show", invoke(&manager.callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Add rep", invoke(&manager.callbacks.OnAddRep)),
		fyne.NewMenuItem("Reset reps", invoke(&manager.callbacks.OnResetReps)),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		fyne.NewMenuItem("Reset stopwatch", invoke(&manager.callbacks.OnResetClock)),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", invoke(&manager.callbacks.OnPreferences)),
		fyne.NewMenuItem("Quit", invoke(&manager.callbacks.OnQuit)),
	)
	if manager.host != nil {
		manager.host.SetSystemTrayMenu(manager.menu)
	}
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
