package model

import "time"

const (
	// DefaultTargetReps is the GVT set size.
	DefaultTargetReps = 10
	// DefaultCooldown is the add-rep lockout used when cooldown is enabled.
	DefaultCooldown = 5 * time.Second

	// SecondTick advances the stopwatch once per displayed second.
	SecondTick = time.Second
	// MillisTick is fast enough to animate the centisecond field.
	MillisTick = 83 * time.Millisecond
)

// RepsConfig defines the rep counter limits.
type RepsConfig struct {
	Target int
	// Cooldown disables the add control after each rep. Zero disables it.
	Cooldown time.Duration
}

// Accumulation selects how elapsed time advances while the stopwatch runs.
type Accumulation string

const (
	// AccumulateTicks adds one TickInterval per tick and drifts under load.
	AccumulateTicks Accumulation = "ticks"
	// AccumulateWallClock measures time since start on every tick.
	AccumulateWallClock Accumulation = "wall_clock"
)

// StopwatchConfig contains runtime settings for the Stopwatch state machine.
type StopwatchConfig struct {
	TickInterval   time.Duration
	ShowMillis     bool
	RestartOnStart bool
	Accumulation   Accumulation
}
