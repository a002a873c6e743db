package stopwatch

import "time"

// State represents the current Stopwatch mode.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// EventType defines the type of Stopwatch event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventTick        EventType = "tick"
	EventReset       EventType = "reset"
)

// Event represents a Stopwatch update for observers. Every event is a render.
type Event struct {
	Type    EventType
	State   State
	Elapsed time.Duration
	At      time.Time
}

// Running reports whether the event was emitted while running.
func (event Event) Running() bool {
	return event.State == StateRunning
}
