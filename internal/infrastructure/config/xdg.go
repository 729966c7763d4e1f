package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "ydbgather"
	configFileName = "config.toml"
)

// GetConfigDir returns $XDG_CONFIG_HOME/ydbgather, falling back to
// ~/.config/ydbgather.
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path of the main configuration file.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// GetManDir returns the per-user section 1 man page directory,
// $XDG_DATA_HOME/man/man1 or ~/.local/share/man/man1.
func GetManDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "man", "man1"), nil
}
