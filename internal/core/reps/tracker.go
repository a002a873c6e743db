package reps

import (
	"fmt"
	"sync"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"

	"go.uber.org/zap"
)

// Display receives the rendered counter text.
type Display interface {
	SetText(text string)
}

// Store persists the counter between launches.
type Store interface {
	Load() (int, bool)
	Save(count int) error
}

// Tracker is a rep counter clamped to a fixed target.
type Tracker struct {
	mu      sync.Mutex
	config  model.RepsConfig
	count   int
	display Display
	store   Store
	logger  *zap.Logger
}

// New creates a Tracker at zero reps. The target cannot change afterwards.
func New(config model.RepsConfig) *Tracker {
	if config.Target < 0 {
		config.Target = 0
	}
	if config.Cooldown < 0 {
		config.Cooldown = 0
	}
	return &Tracker{
		config: config,
		logger: zap.NewNop(),
	}
}

// SetDisplay binds the element that shows the count. Nil unbinds it.
func (tracker *Tracker) SetDisplay(display Display) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.display = display
}

// SetStore enables persistence. Nil disables it.
func (tracker *Tracker) SetStore(store Store) {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.store = store
}

// SetLogger injects a logger.
func (tracker *Tracker) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.logger = logger
}

// Initialize adopts the persisted count, if any, and renders.
func (tracker *Tracker) Initialize() {
	tracker.mu.Lock()
	if tracker.store != nil {
		if count, ok := tracker.store.Load(); ok {
			if count > tracker.config.Target {
				tracker.logger.Info("persisted reps above target, clamping",
					zap.Int("persisted", count),
					zap.Int("target", tracker.config.Target))
				count = tracker.config.Target
			}
			tracker.count = count
		}
	}
	tracker.mu.Unlock()

	tracker.Render()
}

// AddRep increments the count unless the target is reached.
func (tracker *Tracker) AddRep() bool {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	if tracker.count >= tracker.config.Target {
		return false
	}
	tracker.count++
	return true
}

// ResetReps sets the count back to zero.
func (tracker *Tracker) ResetReps() {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	tracker.count = 0
}

// Render writes the count to the display and persists it.
func (tracker *Tracker) Render() {
	tracker.mu.Lock()
	count := tracker.count
	display := tracker.display
	store := tracker.store
	logger := tracker.logger
	tracker.mu.Unlock()

	if display != nil {
		display.SetText(FormatCount(count))
	}
	if store != nil {
		if err := store.Save(count); err != nil {
			logger.Warn("persist reps failed", zap.Int("count", count), zap.Error(err))
		}
	}
}

// Count returns the current count.
func (tracker *Tracker) Count() int {
	tracker.mu.Lock()
	defer tracker.mu.Unlock()
	return tracker.count
}

// Target returns the fixed target.
func (tracker *Tracker) Target() int {
	return tracker.config.Target
}

// Cooldown returns the add-rep lockout, zero when disabled.
func (tracker *Tracker) Cooldown() time.Duration {
	return tracker.config.Cooldown
}

// Text returns the rendered count.
func (tracker *Tracker) Text() string {
	return FormatCount(tracker.Count())
}

// FormatCount pads to two digits; wider values are left intact.
func FormatCount(count int) string {
	return fmt.Sprintf("%02d", count)
}
