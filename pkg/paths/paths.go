package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotprov/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit configuration file
	EnvConfigFile = "DOTPROV_CONFIG"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name used under the XDG base directories
	AppDirName = "dotprov"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotprov.log"
)

// HomeDir returns the user's home directory, or "" when it cannot be
// determined.
func HomeDir() string {
	if xdg.Home != "" {
		return xdg.Home
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return os.Getenv(EnvHome)
}

// ExpandHome expands a leading ~ or ~/ to the home directory.
// ~user forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir := HomeDir()
	if homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	return path
}

// ResolveDestination tilde-expands path and makes it absolute.
func ResolveDestination(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "destination is empty")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for %s", path)
	}
	return abs, nil
}

// DisplayWithTilde abbreviates the home directory prefix of path to ~.
func DisplayWithTilde(path string) string {
	homeDir := HomeDir()
	if homeDir == "" || homeDir == string(filepath.Separator) {
		return path
	}

	if path == homeDir {
		return "~"
	}

	prefix := strings.TrimSuffix(homeDir, string(filepath.Separator)) + string(filepath.Separator)
	if strings.HasPrefix(path, prefix) {
		return "~" + string(filepath.Separator) + path[len(prefix):]
	}

	return path
}

// ConfigFilePath returns the user configuration file location
func ConfigFilePath() string {
	if configFile := os.Getenv(EnvConfigFile); configFile != "" {
		return ExpandHome(configFile)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, AppDirName, LogFileName)
}
