package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pedrobritto/gvt-tracker/internal/platform"
	"github.com/pedrobritto/gvt-tracker/internal/ui/preferences"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

const maxCooldownSeconds = 600

type yamlSettings struct {
	TargetReps      *int  `yaml:"target_reps"`
	CooldownEnabled bool  `yaml:"cooldown_enabled"`
	CooldownSeconds int   `yaml:"cooldown_seconds"`
	PersistReps     *bool `yaml:"persist_reps"`
	ShowMillis      bool  `yaml:"show_millis"`
	RestartOnStart  bool  `yaml:"restart_on_start"`
	WallClock       bool  `yaml:"wall_clock"`
}

// SettingsPath returns the settings file location for appName.
func SettingsPath(appName string) (string, error) {
	configDir, err := platform.ConfigDir(appName)
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFile(configPath)
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := SettingsPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsFile(configPath, settings)
}

// LoadSettingsFile reads preferences from an explicit path.
func LoadSettingsFile(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettingsFile writes preferences to an explicit path.
func SaveSettingsFile(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	targetReps := settings.TargetReps
	persistReps := settings.PersistReps
	fileData := yamlSettings{
		TargetReps:      &targetReps,
		CooldownEnabled: settings.CooldownEnabled,
		CooldownSeconds: int(settings.Cooldown / time.Second),
		PersistReps:     &persistReps,
		ShowMillis:      settings.ShowMillis,
		RestartOnStart:  settings.RestartOnStart,
		WallClock:       settings.WallClock,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.TargetReps != nil && *fileData.TargetReps >= 0 {
		settings.TargetReps = *fileData.TargetReps
	}
	if fileData.CooldownSeconds > 0 && fileData.CooldownSeconds <= maxCooldownSeconds {
		settings.Cooldown = time.Duration(fileData.CooldownSeconds) * time.Second
	}
	if fileData.PersistReps != nil {
		settings.PersistReps = *fileData.PersistReps
	}

	settings.CooldownEnabled = fileData.CooldownEnabled
	settings.ShowMillis = fileData.ShowMillis
	settings.RestartOnStart = fileData.RestartOnStart
	settings.WallClock = fileData.WallClock
}
