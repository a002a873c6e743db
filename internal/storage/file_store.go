package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pedrobritto/gvt-tracker/internal/platform"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const stateFileName = "state.yaml"

// FileStore is a KeyValue kept in a YAML map on disk. Every write is flushed.
type FileStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	logger *zap.Logger
}

// StatePath returns the default state file location for appName.
func StatePath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, stateFileName), nil
}

// OpenFileStore loads path. A missing file yields an empty store; an
// unreadable one is logged and treated as empty.
func OpenFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := &FileStore{
		path:   path,
		values: map[string]string{},
		logger: logger,
	}
	if err := store.load(); err != nil {
		logger.Warn("state file unreadable, starting empty", zap.String("path", path), zap.Error(err))
	}
	return store
}

// String returns the value for key, or "" when absent.
func (store *FileStore) String(key string) string {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.values[key]
}

// SetString stores value and flushes the file. Flush failures are logged.
func (store *FileStore) SetString(key string, value string) {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.values[key] = value
	if err := store.flushLocked(); err != nil {
		store.logger.Warn("write state file failed", zap.String("path", store.path), zap.Error(err))
	}
}

// Path returns the backing file.
func (store *FileStore) Path() string {
	return store.path
}

func (store *FileStore) load() error {
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read state file: %w", err)
	}

	values := map[string]string{}
	if err := yaml.Unmarshal(rawData, &values); err != nil {
		return fmt.Errorf("parse state yaml: %w", err)
	}
	store.values = values
	return nil
}

func (store *FileStore) flushLocked() error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}
	serialized, err := yaml.Marshal(store.values)
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}
	if err := os.WriteFile(store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}
