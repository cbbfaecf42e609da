// Package config resolves the settings of an exampledocs run.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the exampledocs global configuration directory.
//
// Resolution:
//   - $EXAMPLEDOCS_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/exampledocs if set (respects XDG on any platform)
//   - %AppData%/exampledocs on Windows
//   - ~/.config/exampledocs on macOS and Linux
func Dir() string {
	if dir := os.Getenv("EXAMPLEDOCS_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "exampledocs")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "exampledocs")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "exampledocs")
}

// GlobalFile returns the path of the global config file, or "" when no
// config directory can be determined.
func GlobalFile() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalFileName)
}
