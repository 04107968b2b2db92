//go:build unix

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotprov/pkg/filesystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMode(t *testing.T) {
	tests := []struct {
		name        string
		initial     os.FileMode
		executable  bool
		wantMode    os.FileMode
		wantChanged bool
	}{
		{name: "plain file tightened", initial: 0644, executable: false, wantMode: 0600, wantChanged: true},
		{name: "executable tightened", initial: 0755, executable: true, wantMode: 0700, wantChanged: true},
		{name: "already private", initial: 0600, executable: false, wantMode: 0600, wantChanged: false},
		{name: "already private exec", initial: 0700, executable: true, wantMode: 0700, wantChanged: false},
		{name: "exec bit dropped", initial: 0700, executable: false, wantMode: 0600, wantChanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "file")
			require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
			require.NoError(t, os.Chmod(path, tt.initial))

			policy := Default(filesystem.NewOS())
			changed, err := policy.NormalizeMode(path, tt.executable)
			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, info.Mode().Perm())
		})
	}
}

func TestNormalizeMode_Missing(t *testing.T) {
	policy := Default(filesystem.NewOS())

	_, err := policy.NormalizeMode(filepath.Join(t.TempDir(), "missing"), false)
	assert.Error(t, err)
}

func TestApplyHiddenConvention_NoopOnUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".hidden")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	changed, err := Default(filesystem.NewOS()).ApplyHiddenConvention(path)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSystemOwned(t *testing.T) {
	policy := Default(filesystem.NewOS())

	owned, err := policy.SystemOwned(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, os.Geteuid() == 0, owned)

	_, err = policy.SystemOwned(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestListable(t *testing.T) {
	policy := Default(filesystem.NewOS())
	dir := t.TempDir()
	assert.True(t, policy.Listable(dir))

	if os.Geteuid() == 0 {
		t.Skip("root bypasses directory permissions")
	}

	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0600))
	t.Cleanup(func() { _ = os.Chmod(locked, 0700) })

	assert.False(t, policy.Listable(locked))
}

func TestModeHelpers(t *testing.T) {
	assert.Equal(t, ModePrivateDir, TargetMode(true))
	assert.Equal(t, ModePrivateFile, TargetMode(false))

	dir := t.TempDir()
	exe := filepath.Join(dir, "exe")
	plain := filepath.Join(dir, "plain")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0700))
	require.NoError(t, os.WriteFile(plain, []byte("x"), 0600))

	info, err := os.Stat(exe)
	require.NoError(t, err)
	assert.True(t, IsExecutable(info))

	info, err = os.Stat(plain)
	require.NoError(t, err)
	assert.False(t, IsExecutable(info))
}
