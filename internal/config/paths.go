package config

import (
	"os"
	"path/filepath"
)

// GetOmbreHome returns OMBRE_HOME or the ~/.ombre default
func GetOmbreHome() string {
	ombreHome := os.Getenv("OMBRE_HOME")
	if ombreHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".ombre"
		}
		return filepath.Join(homeDir, ".ombre")
	}
	return ExpandPath(ombreHome)
}

// GetDBPath returns $OMBRE_HOME/palettes.db
func GetDBPath() string {
	return filepath.Join(GetOmbreHome(), "palettes.db")
}

// GetSettingsPath returns $OMBRE_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetOmbreHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
