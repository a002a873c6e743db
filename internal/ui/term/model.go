package term

import (
	"fmt"
	"strings"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/reps"
	"github.com/pedrobritto/gvt-tracker/internal/core/stopwatch"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type keyMap struct {
	Add        key.Binding
	ResetReps  key.Binding
	Start      key.Binding
	ResetClock key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Add:        key.NewBinding(key.WithKeys("a", "+", "enter"), key.WithHelp("a", "add rep")),
		ResetReps:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset reps")),
		Start:      key.NewBinding(key.WithKeys(" ", "s"), key.WithHelp("space", "start/stop")),
		ResetClock: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset clock")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Width(6)
	digitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)
	runningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	coolingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#fab387"))
)

type countDisplay struct {
	text string
}

func (display *countDisplay) SetText(text string) {
	display.text = text
}

type eventMsg stopwatch.Event

type eventsClosedMsg struct{}

type cooldownDoneMsg struct{}

// Model is the bubbletea front-end over a rep tracker and a stopwatch.
type Model struct {
	tracker     *reps.Tracker
	display     *countDisplay
	watch       *stopwatch.Stopwatch
	events      <-chan stopwatch.Event
	last        stopwatch.Event
	keys        keyMap
	coolingDown bool
	quitting    bool
}

// New binds the tracker's display to the model and subscribes to the
// stopwatch. Call tracker.Initialize afterwards to hydrate the count.
func New(tracker *reps.Tracker, watch *stopwatch.Stopwatch) Model {
	display := &countDisplay{text: reps.FormatCount(tracker.Count())}
	tracker.SetDisplay(display)
	return Model{
		tracker: tracker,
		display: display,
		watch:   watch,
		events:  watch.Subscribe(16),
		last:    watch.Snapshot(),
		keys:    defaultKeyMap(),
	}
}

// Init starts listening for stopwatch events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles key presses, stopwatch events and cooldown expiry.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case eventMsg:
		m.last = stopwatch.Event(msg)
		return m, waitForEvent(m.events)
	case eventsClosedMsg:
		return m, nil
	case cooldownDoneMsg:
		m.coolingDown = false
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		if m.coolingDown {
			return m, nil
		}
		m.tracker.AddRep()
		m.tracker.Render()
		cooldown := m.tracker.Cooldown()
		if cooldown <= 0 {
			return m, nil
		}
		m.coolingDown = true
		return m, tea.Tick(cooldown, func(time.Time) tea.Msg {
			return cooldownDoneMsg{}
		})
	case key.Matches(msg, m.keys.ResetReps):
		m.tracker.ResetReps()
		m.tracker.Render()
	case key.Matches(msg, m.keys.Start):
		m.watch.PressStart()
	case key.Matches(msg, m.keys.ResetClock):
		m.watch.Reset()
	}
	return m, nil
}

// View renders both widgets and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	config := m.watch.Config()

	repsLine := labelStyle.Render("Reps") +
		digitStyle.Render(m.display.text) +
		mutedStyle.Render(fmt.Sprintf(" / %s", reps.FormatCount(m.tracker.Target())))
	if m.coolingDown {
		repsLine += "  " + coolingStyle.Render("cooling down")
	}

	clock := stopwatch.Format(m.last.Elapsed).Text(config.ShowMillis)
	clockStyle := digitStyle
	state := "stopped"
	if m.last.Running() {
		clockStyle = runningStyle
		state = "running"
	}
	clockLine := labelStyle.Render("Rest") + clockStyle.Render(clock) + "  " + mutedStyle.Render(state)

	lines := []string{
		titleStyle.Render("GVT Tracker"),
		"",
		repsLine,
		clockLine,
		"",
		mutedStyle.Render(m.helpLine(config.RestartOnStart)),
	}
	return strings.Join(lines, "\n") + "\n"
}

func (m Model) helpLine(restartOnStart bool) string {
	start := m.keys.Start.Help()
	startDesc := start.Desc
	if restartOnStart {
		startDesc = "restart"
	}
	parts := []string{
		m.keys.Add.Help().Key + " " + m.keys.Add.Help().Desc,
		m.keys.ResetReps.Help().Key + " " + m.keys.ResetReps.Help().Desc,
		start.Key + " " + startDesc,
		m.keys.ResetClock.Help().Key + " " + m.keys.ResetClock.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, "  ")
}

func waitForEvent(events <-chan stopwatch.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return eventsClosedMsg{}
		}
		return eventMsg(event)
	}
}
