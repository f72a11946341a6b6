package config

import (
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName     = "rfkit"
	logFileName = "rfkit.log"
)

func Dir() string {
	if override := os.Getenv("RFKIT_CONFIG_DIR"); override != "" {
		return override
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".rfkit"
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", appName)
	case "windows":
		return filepath.Join(home, "AppData", "Roaming", appName)
	default:
		return filepath.Join(home, ".config", appName)
	}
}

func LogPath() string {
	return filepath.Join(Dir(), logFileName)
}
