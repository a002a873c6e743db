package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the per-app configuration directory, falling back to
// ~/.config when the OS does not report one.
func ConfigDir(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return filepath.Join(configDir, appName), nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}
	return filepath.Join(homeDir, ".config", appName), nil
}
