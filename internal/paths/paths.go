// Package paths resolves the configuration and data directory locations of
// the breadcrumbs tool.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config and data roots.
const AppName = "breadcrumbs"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "BREADCRUMBS_CONFIG_DIR"
	EnvDataDir   = "BREADCRUMBS_DATA_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	goos          string
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	goos:          runtime.GOOS,
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/breadcrumbs (fallback ~/.config/breadcrumbs)
// macOS:   ~/Library/Application Support/breadcrumbs
// Windows: %APPDATA%/breadcrumbs
func DefaultConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/breadcrumbs (fallback ~/.local/share/breadcrumbs)
// macOS:   ~/Library/Application Support/breadcrumbs
// Windows: %APPDATA%/breadcrumbs
func DefaultDataDir() (string, error) {
	return xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share"))
}

func xdgDir(env, homeRel string) (string, error) {
	if platformDir.goos != "linux" {
		// os.UserConfigDir covers macOS and Windows for both config and data.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
	if xdg := os.Getenv(env); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := platformDir.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, homeRel, AppName), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > BREADCRUMBS_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if dir, ok := override(flag, os.Getenv(EnvConfigDir)); ok {
		return filepath.Abs(dir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > BREADCRUMBS_DATA_DIR env > configured (the data_dir config key) >
// DefaultDataDir(). A relative configured value is taken relative to
// configDir.
func ResolveDataDir(flag, configured, configDir string) (string, error) {
	if dir, ok := override(flag, os.Getenv(EnvDataDir)); ok {
		return filepath.Abs(dir)
	}
	if configured != "" {
		if !filepath.IsAbs(configured) && configDir != "" {
			configured = filepath.Join(configDir, configured)
		}
		return filepath.Abs(configured)
	}
	return DefaultDataDir()
}

// override returns the first non-empty candidate.
func override(candidates ...string) (string, bool) {
	for _, c := range candidates {
		if c != "" {
			return c, true
		}
	}
	return "", false
}
