// pkg/testutil/environment.go
// DEPENDENCIES: filesystem
// PURPOSE: Orchestrate isolated test environments

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotprov/pkg/filesystem"
)

// configEnvVars lists every variable the configuration layer reads
var configEnvVars = []string{
	"DOTPROV_CONFIG",
	"DOTPROV_PROVISION_SOURCES",
	"DOTPROV_PROVISION_FAIL_ON_ERROR",
	"DOTPROV_OUTPUT_FORMAT",
	"DOTPROV_OUTPUT_NO_COLOR",
	"DOTPROV_LOGGING_FILE",
}

// TestEnvironment provides a complete isolated environment
type TestEnvironment struct {
	// Core paths
	Home       string
	SourceRoot string
	ConfigHome string
	StateHome  string

	FS filesystem.FS

	t *testing.T
}

// NewTestEnvironment creates a fresh home and source root under t.TempDir
// and points HOME and the XDG variables at them. DOTPROV_* variables are
// cleared for the duration of the test.
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	tempDir := t.TempDir()
	env := &TestEnvironment{
		Home:       filepath.Join(tempDir, "home"),
		SourceRoot: filepath.Join(tempDir, "pkg"),
		FS:         filesystem.NewOS(),
		t:          t,
	}
	env.ConfigHome = filepath.Join(env.Home, ".config")
	env.StateHome = filepath.Join(env.Home, ".local", "state")

	for _, dir := range []string{env.Home, env.SourceRoot} {
		if err := os.MkdirAll(dir, 0700); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	for _, key := range configEnvVars {
		t.Setenv(key, "")
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("Failed to unset %s: %v", key, err)
		}
	}
	t.Setenv("XDG_CONFIG_HOME", env.ConfigHome)
	t.Setenv("XDG_STATE_HOME", env.StateHome)
	SetHome(t, env.Home)

	return env
}

// SetHome points HOME at home and reloads the XDG locations. The previous
// values are restored when the test ends.
func SetHome(t *testing.T, home string) {
	t.Helper()
	t.Setenv("HOME", home)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

// HomePath joins elem onto the home directory
func (env *TestEnvironment) HomePath(elem ...string) string {
	return filepath.Join(append([]string{env.Home}, elem...)...)
}

// SourcePath joins elem onto the source root
func (env *TestEnvironment) SourcePath(elem ...string) string {
	return filepath.Join(append([]string{env.SourceRoot}, elem...)...)
}

// WithFileTree creates tree under the source root
func (env *TestEnvironment) WithFileTree(tree FileTree) {
	env.t.Helper()
	CreateFileTree(env.t, env.SourceRoot, tree)
}

// WriteConfig writes the user configuration file
func (env *TestEnvironment) WriteConfig(content string) string {
	env.t.Helper()
	path := filepath.Join(env.ConfigHome, "dotprov", "config.toml")
	WriteFile(env.t, path, content, 0644)
	return path
}

// SkipIfRoot skips tests that rely on permission checks the superuser
// bypasses.
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
}
