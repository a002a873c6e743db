package term

import (
	"testing"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"
	"github.com/pedrobritto/gvt-tracker/internal/core/reps"
	"github.com/pedrobritto/gvt-tracker/internal/core/stopwatch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func runeKey(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func newTestModel(t *testing.T, repsConfig model.RepsConfig, watchConfig model.StopwatchConfig) (Model, *reps.Tracker, *stopwatch.Stopwatch) {
	t.Helper()
	tracker := reps.New(repsConfig)
	watch := stopwatch.New(watchConfig, stopwatch.Config{})
	t.Cleanup(watch.Close)

	m := New(tracker, watch)
	tracker.Initialize()
	return m, tracker, watch
}

func apply(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	got, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return got, cmd
}

func TestAddAndResetReps(t *testing.T) {
	m, tracker, _ := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Hour})

	m, cmd := apply(t, m, runeKey("a"))
	require.Nil(t, cmd)
	m, _ = apply(t, m, runeKey("+"))
	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, 3, tracker.Count())
	require.Contains(t, m.View(), "03 / 10")

	m, _ = apply(t, m, runeKey("x"))
	require.Equal(t, 0, tracker.Count())
	require.Contains(t, m.View(), "00 / 10")
}

func TestAddStopsAtTarget(t *testing.T) {
	m, tracker, _ := newTestModel(t, model.RepsConfig{Target: 2}, model.StopwatchConfig{TickInterval: time.Hour})

	for i := 0; i < 4; i++ {
		m, _ = apply(t, m, runeKey("a"))
	}

	require.Equal(t, 2, tracker.Count())
	require.Contains(t, m.View(), "02 / 02")
}

func TestCooldownBlocksAdd(t *testing.T) {
	m, tracker, _ := newTestModel(t, model.RepsConfig{Target: 10, Cooldown: 5 * time.Second}, model.StopwatchConfig{TickInterval: time.Hour})

	m, cmd := apply(t, m, runeKey("a"))
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "cooling down")

	m, cmd = apply(t, m, runeKey("a"))
	require.Nil(t, cmd)
	require.Equal(t, 1, tracker.Count())

	m, _ = apply(t, m, cooldownDoneMsg{})
	require.NotContains(t, m.View(), "cooling down")

	m, _ = apply(t, m, runeKey("a"))
	require.Equal(t, 2, tracker.Count())
}

func TestStopwatchKeys(t *testing.T) {
	m, _, watch := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Hour})

	m, _ = apply(t, m, tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, watch.Running())

	m, _ = apply(t, m, runeKey("s"))
	require.False(t, watch.Running())

	m, _ = apply(t, m, runeKey("s"))
	_, _ = apply(t, m, runeKey("r"))
	require.False(t, watch.Running())
	require.Zero(t, watch.Elapsed())
}

func TestEventsUpdateClock(t *testing.T) {
	m, _, _ := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: model.MillisTick, ShowMillis: true})
	require.Contains(t, m.View(), "00:00.00")

	m, cmd := apply(t, m, eventMsg{Type: stopwatch.EventTick, State: stopwatch.StateRunning, Elapsed: 65*time.Second + 430*time.Millisecond})
	require.NotNil(t, cmd)
	require.Contains(t, m.View(), "01:05.43")
	require.Contains(t, m.View(), "running")
}

func TestInitForwardsStopwatchEvents(t *testing.T) {
	m, _, watch := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Hour})

	cmd := m.Init()
	watch.Start()

	msg := cmd()
	event, ok := msg.(eventMsg)
	require.True(t, ok)
	require.Equal(t, stopwatch.EventStateChange, event.Type)
	require.Equal(t, stopwatch.StateRunning, event.State)
}

func TestClosedStopwatchEndsListening(t *testing.T) {
	m, _, watch := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Hour})
	watch.Close()

	msg := m.Init()()
	require.Equal(t, eventsClosedMsg{}, msg)

	_, cmd := apply(t, m, msg)
	require.Nil(t, cmd)
}

func TestRestartModeHelp(t *testing.T) {
	m, _, _ := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Second, RestartOnStart: true})

	require.Contains(t, m.View(), "space restart")
	require.NotContains(t, m.View(), "start/stop")
}

func TestQuit(t *testing.T) {
	m, _, _ := newTestModel(t, model.RepsConfig{Target: 10}, model.StopwatchConfig{TickInterval: time.Hour})

	m, cmd := apply(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
	require.Empty(t, m.View())
}
