package fsutil

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "packrat"
)

// GetCacheDir returns the platform-specific cache directory for the application.
// On Linux: ~/.cache/packrat/
// On macOS: ~/Library/Caches/packrat/
// On Windows: %LOCALAPPDATA%\packrat\cache\
func GetCacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, AppName), nil
}

// GetArchiveCacheDir returns the directory for cached package archives.
// Format: <cache_dir>/archives/
func GetArchiveCacheDir() (string, error) {
	cacheDir, err := GetCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "archives"), nil
}

// GetDataDir returns the directory holding the registry and license documents.
// Uses XDG_DATA_HOME when set, otherwise ~/.local/share (or the OS equivalent
// reported by os.UserConfigDir on non-Unix platforms).
func GetDataDir() (string, error) {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", AppName), nil
}

// GetConfigPath returns the default path of the policy configuration file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName, "config.yaml"), nil
}
