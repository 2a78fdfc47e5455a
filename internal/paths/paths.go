// Package paths resolves the configuration directory and the catalog data
// file. Each resolver follows a fixed precedence chain and returns an
// absolute path.
package paths

import (
	"os"
	"path/filepath"
)

// DefaultConfigDirName is the CWD-relative configuration directory.
const DefaultConfigDirName = ".library"

// Environment variable names for overrides.
const (
	EnvConfigDir = "LIBRARY_CONFIG_DIR"
	EnvDataFile  = "LIBRARY_DATA_FILE"
)

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > LIBRARY_CONFIG_DIR env > $(CWD)/.library.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(DefaultConfigDirName)
}

// ResolveDataFile returns the catalog data file following the precedence
// chain: flag > configValue > LIBRARY_DATA_FILE env > $(CWD)/defaultName.
//
// defaultName depends on the backend (library_data.json or library.db), so
// the caller supplies it.
func ResolveDataFile(flag, configValue, defaultName string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	if env := os.Getenv(EnvDataFile); env != "" {
		return filepath.Abs(env)
	}
	return filepath.Abs(defaultName)
}
