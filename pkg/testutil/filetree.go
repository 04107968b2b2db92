package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// FileTree represents a directory structure for testing. Values are
// string (a 0644 file), Executable (a 0755 file), Symlink or a nested
// FileTree.
type FileTree map[string]interface{}

// Executable is file content written with the owner execute bit
type Executable string

// Symlink is a link whose target is written verbatim
type Symlink string

// CreateFileTree recursively creates tree under basePath
func CreateFileTree(t *testing.T, basePath string, tree FileTree) {
	t.Helper()

	if err := os.MkdirAll(basePath, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", basePath, err)
	}

	for name, content := range tree {
		fullPath := filepath.Join(basePath, name)

		switch v := content.(type) {
		case string:
			WriteFile(t, fullPath, v, 0644)
		case Executable:
			WriteFile(t, fullPath, string(v), 0755)
		case Symlink:
			if err := os.Symlink(string(v), fullPath); err != nil {
				t.Fatalf("Failed to create symlink %s: %v", fullPath, err)
			}
		case FileTree:
			CreateFileTree(t, fullPath, v)
		default:
			t.Fatalf("Invalid file tree content type for %s: %T", name, content)
		}
	}
}

// WriteFile writes content to path with exactly perm, creating parents
func WriteFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	// WriteFile is subject to the umask
	if err := os.Chmod(path, perm); err != nil {
		t.Fatalf("Failed to chmod %s: %v", path, err)
	}
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Mode returns the permission bits of path, following symlinks
func Mode(t *testing.T, path string) os.FileMode {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Failed to stat %s: %v", path, err)
	}
	return info.Mode().Perm()
}

// IsSymlink reports whether path itself is a symlink
func IsSymlink(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Lstat(path)
	if err != nil {
		t.Fatalf("Failed to lstat %s: %v", path, err)
	}
	return info.Mode()&os.ModeSymlink != 0
}
