package preferences

import (
	"testing"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"

	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	require.Equal(t, 10, settings.TargetReps)
	require.True(t, settings.PersistReps)
	require.False(t, settings.CooldownEnabled)
	require.Equal(t, 5*time.Second, settings.Cooldown)
}

func TestRepsConfig(t *testing.T) {
	settings := DefaultSettings()
	require.Equal(t, model.RepsConfig{Target: 10}, settings.RepsConfig())

	settings.CooldownEnabled = true
	require.Equal(t, model.RepsConfig{Target: 10, Cooldown: 5 * time.Second}, settings.RepsConfig())
}

func TestStopwatchConfig(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Settings)
		expected model.StopwatchConfig
	}{
		{
			name:   "defaults",
			mutate: func(*Settings) {},
			expected: model.StopwatchConfig{
				TickInterval: time.Second,
				Accumulation: model.AccumulateTicks,
			},
		},
		{
			name:   "millis uses the fast tick",
			mutate: func(settings *Settings) { settings.ShowMillis = true },
			expected: model.StopwatchConfig{
				TickInterval: 83 * time.Millisecond,
				ShowMillis:   true,
				Accumulation: model.AccumulateTicks,
			},
		},
		{
			name: "restart and wall clock",
			mutate: func(settings *Settings) {
				settings.RestartOnStart = true
				settings.WallClock = true
			},
			expected: model.StopwatchConfig{
				TickInterval:   time.Second,
				RestartOnStart: true,
				Accumulation:   model.AccumulateWallClock,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := DefaultSettings()
			tt.mutate(&settings)

			require.Equal(t, tt.expected, settings.StopwatchConfig())
		})
	}
}
