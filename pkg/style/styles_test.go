package style

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_PlainWhenNotTerminal(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf, false)

	assert.Equal(t, "failed", s.Error.Render("failed"))
	assert.Equal(t, "changed", s.Changed.Render("changed"))
	assert.Equal(t, "ok", s.Success.Render("ok"))
	assert.Equal(t, "out", s.Muted.Render("out"))
}

func TestIsTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTerminal(&buf))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f), "regular files are not terminals")
}
