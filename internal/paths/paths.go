package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const appName = "layouts"

// GetConfigDir returns the directory holding config.toml
func GetConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

// GetConfigPath returns the default path of the config file
func GetConfigPath() string {
	return filepath.Join(GetConfigDir(), "config.toml")
}

// GetStateDir returns the state directory for logs (survives reboots)
func GetStateDir() string {
	return filepath.Join(xdg.StateHome, appName)
}

// GetLogPath returns the path to the application log file
func GetLogPath() string {
	return filepath.Join(GetStateDir(), "layouts.log")
}

// GetCacheDir returns the cache directory for downloaded images
func GetCacheDir() string {
	return filepath.Join(xdg.CacheHome, appName)
}

// GetCachePath returns the path to the SQLite thumbnail cache
func GetCachePath() string {
	return filepath.Join(GetCacheDir(), "thumbnails.db")
}

// EnsureCacheDir creates the cache directory if it doesn't exist
func EnsureCacheDir() (string, error) {
	dir := GetCacheDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create cache directory: %w", err)
	}
	return dir, nil
}
