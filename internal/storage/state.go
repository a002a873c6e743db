package storage

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// Persisted state keys.
const (
	// KeyRepCount holds the rep counter as a JSON integer.
	KeyRepCount = "gvt.reps.count"
	// KeyStopwatch is reserved for stopwatch state; nothing reads or writes it.
	KeyStopwatch = "gvt.stopwatch.state"
)

// KeyValue is a string-keyed store. fyne.Preferences satisfies it; a missing
// key reads as the empty string.
type KeyValue interface {
	String(key string) string
	SetString(key string, value string)
}

// RepStore persists the rep count under a single key.
type RepStore struct {
	kv     KeyValue
	key    string
	logger *zap.Logger
}

// NewRepStore creates a RepStore on kv using KeyRepCount.
func NewRepStore(kv KeyValue, logger *zap.Logger) *RepStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RepStore{kv: kv, key: KeyRepCount, logger: logger}
}

// Load returns the persisted count. Missing, non-integer and negative values
// are reported as absent.
func (store *RepStore) Load() (int, bool) {
	if store == nil || store.kv == nil {
		return 0, false
	}
	raw := store.kv.String(store.key)
	if raw == "" {
		return 0, false
	}
	count, err := decodeCount(raw)
	if err != nil {
		store.logger.Warn("ignoring persisted reps", zap.String("key", store.key), zap.Error(err))
		return 0, false
	}
	return count, true
}

// Save writes count as a JSON integer.
func (store *RepStore) Save(count int) error {
	if store == nil || store.kv == nil {
		return nil
	}
	encoded, err := json.Marshal(count)
	if err != nil {
		return fmt.Errorf("encode reps: %w", err)
	}
	store.kv.SetString(store.key, string(encoded))
	return nil
}

func decodeCount(raw string) (int, error) {
	var count *int
	if err := json.Unmarshal([]byte(raw), &count); err != nil {
		return 0, fmt.Errorf("decode reps %q: %w", raw, err)
	}
	if count == nil {
		return 0, fmt.Errorf("decode reps %q: no value", raw)
	}
	if *count < 0 {
		return 0, fmt.Errorf("decode reps %q: negative count", raw)
	}
	return *count, nil
}
