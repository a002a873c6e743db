package stopwatch

import (
	"sync"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"

	"go.uber.org/zap"
)

// Config contains runtime options for Stopwatch.
type Config struct {
	Clock Clock
}

// Stopwatch is a two-state machine that accumulates elapsed time on ticks.
type Stopwatch struct {
	mu        sync.Mutex
	config    model.StopwatchConfig
	options   Config
	logger    *zap.Logger
	state     State
	elapsed   time.Duration
	base      time.Duration
	startedAt time.Time
	stopCh    chan struct{}
	events    []chan Event
	closed    bool
}

// New creates a stopped Stopwatch with the provided configuration.
func New(config model.StopwatchConfig, options Config) *Stopwatch {
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	return &Stopwatch{
		config:  normalizeConfig(config),
		options: options,
		logger:  zap.NewNop(),
		state:   StateStopped,
	}
}

// SetLogger injects a logger.
func (watch *Stopwatch) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.logger = logger
}

// Subscribe registers a new observer channel.
func (watch *Stopwatch) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.closed {
		close(ch)
		return ch
	}
	watch.events = append(watch.events, ch)
	return ch
}

// Config returns the active configuration.
func (watch *Stopwatch) Config() model.StopwatchConfig {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.config
}

// State returns the current state.
func (watch *Stopwatch) State() State {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.state
}

// Running reports whether the stopwatch is ticking.
func (watch *Stopwatch) Running() bool {
	return watch.State() == StateRunning
}

// Elapsed returns the accumulated time.
func (watch *Stopwatch) Elapsed() time.Duration {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return watch.elapsed
}

// Snapshot returns the current state as a render event without emitting it.
func (watch *Stopwatch) Snapshot() Event {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	return Event{
		Type:    EventStateChange,
		State:   watch.state,
		Elapsed: watch.elapsed,
		At:      watch.options.Clock.Now(),
	}
}

// Start launches the ticking loop. It is ignored while already running.
func (watch *Stopwatch) Start() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.startLocked()
}

// Stop cancels the ticking loop. It is ignored while stopped.
func (watch *Stopwatch) Stop() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if !watch.stopLocked() {
		return
	}
	watch.emitLocked(Event{
		Type:    EventStateChange,
		State:   StateStopped,
		Elapsed: watch.elapsed,
		At:      watch.options.Clock.Now(),
	})
}

// Reset stops the stopwatch and clears the elapsed time.
func (watch *Stopwatch) Reset() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.resetLocked()
}

// Restart resets and starts again in one step.
func (watch *Stopwatch) Restart() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	watch.resetLocked()
	watch.startLocked()
}

// Toggle stops a running stopwatch and starts a stopped one.
func (watch *Stopwatch) Toggle() {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	if watch.state == StateRunning {
		if watch.stopLocked() {
			watch.emitLocked(Event{
				Type:    EventStateChange,
				State:   StateStopped,
				Elapsed: watch.elapsed,
				At:      watch.options.Clock.Now(),
			})
		}
		return
	}
	watch.startLocked()
}

// PressStart handles the primary control: restart in restart mode, toggle otherwise.
func (watch *Stopwatch) PressStart() {
	if watch.Config().RestartOnStart {
		watch.Restart()
		return
	}
	watch.Toggle()
}

// UpdateConfig swaps the configuration. A running stopwatch keeps its
// elapsed time and continues with the new tick interval.
func (watch *Stopwatch) UpdateConfig(config model.StopwatchConfig) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	wasRunning := watch.state == StateRunning
	if wasRunning {
		watch.stopLocked()
	}
	watch.config = normalizeConfig(config)
	if wasRunning {
		watch.startLocked()
	}
}

// Close stops the stopwatch and closes observers.
func (watch *Stopwatch) Close() {
	watch.mu.Lock()
	if watch.closed {
		watch.mu.Unlock()
		return
	}
	watch.stopLocked()
	watch.closed = true
	events := watch.events
	watch.events = nil
	watch.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (watch *Stopwatch) startLocked() {
	if watch.state == StateRunning || watch.closed {
		return
	}
	now := watch.options.Clock.Now()
	watch.state = StateRunning
	watch.base = watch.elapsed
	watch.startedAt = now
	stopCh := make(chan struct{})
	watch.stopCh = stopCh
	ticker := watch.options.Clock.NewTicker(watch.config.TickInterval)

	watch.logger.Debug("stopwatch started",
		zap.Duration("elapsed", watch.elapsed),
		zap.Duration("tick", watch.config.TickInterval))
	watch.emitLocked(Event{
		Type:    EventStateChange,
		State:   StateRunning,
		Elapsed: watch.elapsed,
		At:      now,
	})

	go watch.run(ticker, stopCh)
}

// stopLocked invalidates the current timer handle and reports whether the
// stopwatch was running.
func (watch *Stopwatch) stopLocked() bool {
	if watch.state != StateRunning {
		return false
	}
	if watch.config.Accumulation == model.AccumulateWallClock {
		watch.advanceWallClockLocked(watch.options.Clock.Now())
	}
	close(watch.stopCh)
	watch.stopCh = nil
	watch.state = StateStopped
	watch.logger.Debug("stopwatch stopped", zap.Duration("elapsed", watch.elapsed))
	return true
}

func (watch *Stopwatch) resetLocked() {
	watch.stopLocked()
	watch.elapsed = 0
	watch.base = 0
	watch.emitLocked(Event{
		Type:    EventReset,
		State:   StateStopped,
		Elapsed: 0,
		At:      watch.options.Clock.Now(),
	})
}

func (watch *Stopwatch) run(ticker Ticker, stopCh chan struct{}) {
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case tickTime := <-ticker.C():
			watch.tick(stopCh, tickTime)
		}
	}
}

func (watch *Stopwatch) tick(stopCh chan struct{}, tickTime time.Time) {
	watch.mu.Lock()
	defer watch.mu.Unlock()
	// A tick that raced with Stop or Restart belongs to a dead handle.
	if watch.state != StateRunning || watch.stopCh != stopCh {
		return
	}

	if watch.config.Accumulation == model.AccumulateWallClock {
		watch.advanceWallClockLocked(tickTime)
	} else {
		watch.elapsed += watch.config.TickInterval
	}

	watch.emitLocked(Event{
		Type:    EventTick,
		State:   StateRunning,
		Elapsed: watch.elapsed,
		At:      tickTime,
	})
}

func (watch *Stopwatch) advanceWallClockLocked(now time.Time) {
	measured := watch.base + now.Sub(watch.startedAt)
	if measured > watch.elapsed {
		watch.elapsed = measured
	}
}

func (watch *Stopwatch) emitLocked(event Event) {
	for _, ch := range watch.events {
		select {
		case ch <- event:
		default:
		}
	}
}

func normalizeConfig(config model.StopwatchConfig) model.StopwatchConfig {
	if config.TickInterval <= 0 {
		config.TickInterval = model.SecondTick
	}
	if config.Accumulation == "" {
		config.Accumulation = model.AccumulateTicks
	}
	return config
}
