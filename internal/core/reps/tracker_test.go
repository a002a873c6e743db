package reps

import (
	"errors"
	"testing"

	"github.com/pedrobritto/gvt-tracker/internal/core/model"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type textDisplay struct {
	text    string
	renders int
}

func (display *textDisplay) SetText(text string) {
	display.text = text
	display.renders++
}

type memoryStore struct {
	value   int
	present bool
	saves   []int
	err     error
}

func (store *memoryStore) Load() (int, bool) {
	return store.value, store.present
}

func (store *memoryStore) Save(count int) error {
	if store.err != nil {
		return store.err
	}
	store.value = count
	store.present = true
	store.saves = append(store.saves, count)
	return nil
}

func TestAddRepClampsAtTarget(t *testing.T) {
	const target = model.DefaultTargetReps
	for n := 0; n <= target+3; n++ {
		tracker := New(model.RepsConfig{Target: target})
		for i := 0; i < n; i++ {
			tracker.AddRep()
		}

		want := n
		if want > target {
			want = target
		}
		require.Equal(t, want, tracker.Count(), "after %d adds", n)
	}
}

func TestAddRepReportsChange(t *testing.T) {
	tracker := New(model.RepsConfig{Target: 1})

	require.True(t, tracker.AddRep())
	require.False(t, tracker.AddRep())
	require.Equal(t, 1, tracker.Count())
}

func TestZeroTargetNeverCounts(t *testing.T) {
	tracker := New(model.RepsConfig{Target: 0})

	for i := 0; i < 5; i++ {
		require.False(t, tracker.AddRep())
	}
	require.Equal(t, 0, tracker.Count())
}

func TestNegativeTargetTreatedAsZero(t *testing.T) {
	tracker := New(model.RepsConfig{Target: -4, Cooldown: -1})

	require.Equal(t, 0, tracker.Target())
	require.Zero(t, tracker.Cooldown())
	require.False(t, tracker.AddRep())
}

func TestResetReproducesFreshSequence(t *testing.T) {
	fresh := New(model.RepsConfig{Target: 4})
	reused := New(model.RepsConfig{Target: 4})
	for i := 0; i < 3; i++ {
		reused.AddRep()
	}
	reused.ResetReps()
	require.Equal(t, 0, reused.Count())

	for i := 0; i < 6; i++ {
		fresh.AddRep()
		reused.AddRep()
		require.Equal(t, fresh.Count(), reused.Count())
	}
}

func TestFormatCount(t *testing.T) {
	require.Equal(t, "00", FormatCount(0))
	require.Equal(t, "07", FormatCount(7))
	require.Equal(t, "10", FormatCount(10))
	require.Equal(t, "100", FormatCount(100))
}

func TestRenderWritesDisplayAndStore(t *testing.T) {
	display := &textDisplay{}
	store := &memoryStore{}
	tracker := New(model.RepsConfig{Target: 10})
	tracker.SetDisplay(display)
	tracker.SetStore(store)

	for i := 0; i < 7; i++ {
		tracker.AddRep()
	}
	tracker.Render()

	require.Equal(t, "07", display.text)
	require.Equal(t, []int{7}, store.saves)
	require.Equal(t, "07", tracker.Text())
}

func TestRenderWithoutBindings(t *testing.T) {
	tracker := New(model.RepsConfig{Target: 10})
	tracker.AddRep()

	require.NotPanics(t, tracker.Render)
	require.NotPanics(t, tracker.Initialize)
	require.Equal(t, 1, tracker.Count())
}

func TestInitializeHydratesFromStore(t *testing.T) {
	display := &textDisplay{}
	tracker := New(model.RepsConfig{Target: 10})
	tracker.SetDisplay(display)
	tracker.SetStore(&memoryStore{value: 4, present: true})

	tracker.Initialize()

	require.Equal(t, 4, tracker.Count())
	require.Equal(t, "04", display.text)
	require.Equal(t, 1, display.renders)
}

func TestInitializeWithoutPersistedValue(t *testing.T) {
	display := &textDisplay{}
	tracker := New(model.RepsConfig{Target: 10})
	tracker.SetDisplay(display)
	tracker.SetStore(&memoryStore{})

	tracker.Initialize()

	require.Equal(t, 0, tracker.Count())
	require.Equal(t, "00", display.text)
}

func TestInitializeClampsAboveTarget(t *testing.T) {
	tracker := New(model.RepsConfig{Target: 5})
	store := &memoryStore{value: 9, present: true}
	tracker.SetStore(store)

	tracker.Initialize()

	require.Equal(t, 5, tracker.Count())
	require.Equal(t, 5, store.value)
}

func TestPersistenceRoundTrip(t *testing.T) {
	store := &memoryStore{}
	first := New(model.RepsConfig{Target: 10})
	first.SetStore(store)
	first.Initialize()
	for i := 0; i < 3; i++ {
		first.AddRep()
		first.Render()
	}

	reloaded := New(model.RepsConfig{Target: 10})
	reloaded.SetStore(store)
	reloaded.Initialize()

	require.Equal(t, 3, reloaded.Count())
}

func TestRenderLogsSaveFailure(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	tracker := New(model.RepsConfig{Target: 10})
	tracker.SetLogger(zap.New(core))
	tracker.SetStore(&memoryStore{err: errors.New("disk full")})

	tracker.AddRep()
	tracker.Render()

	entries := logs.FilterMessage("persist reps failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(1), entries[0].ContextMap()["count"])
}
