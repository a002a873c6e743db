package preferences

import (
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	TargetReps      int
	CooldownEnabled bool
	Cooldown        time.Duration
	PersistReps     bool

	ShowMillis     bool
	RestartOnStart bool
	WallClock      bool
}

// DefaultSettings returns default settings for GVT Tracker.
func DefaultSettings() Settings {
	return Settings{
		TargetReps:      model.DefaultTargetReps,
		CooldownEnabled: false,
		Cooldown:        model.DefaultCooldown,
		PersistReps:     true,
		ShowMillis:      false,
		RestartOnStart:  false,
		WallClock:       false,
	}
}

// RepsConfig converts settings to RepsConfig.
func (settings Settings) RepsConfig() model.RepsConfig {
	config := model.RepsConfig{Target: settings.TargetReps}
	if settings.CooldownEnabled {
		config.Cooldown = settings.Cooldown
	}
	return config
}

// StopwatchConfig converts settings to StopwatchConfig.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	config := model.StopwatchConfig{
		TickInterval:   model.SecondTick,
		ShowMillis:     settings.ShowMillis,
		RestartOnStart: settings.RestartOnStart,
		Accumulation:   model.AccumulateTicks,
	}
	if settings.ShowMillis {
		config.TickInterval = model.MillisTick
	}
	if settings.WallClock {
		config.Accumulation = model.AccumulateWallClock
	}
	return config
}
