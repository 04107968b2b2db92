package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useStateHome(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return tempDir
}

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stateHome := useStateHome(t)

			SetupLogger(tt.verbosity, Options{Console: &bytes.Buffer{}, File: true})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(stateHome, "dotprov", "dotprov.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created at %s", logPath)
		})
	}
}

func TestSetupLogger_NoFile(t *testing.T) {
	stateHome := useStateHome(t)

	SetupLogger(0, Options{Console: &bytes.Buffer{}})

	_, err := os.Stat(filepath.Join(stateHome, "dotprov", "dotprov.log"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupLogger_ConsoleWriter(t *testing.T) {
	useStateHome(t)
	var buf bytes.Buffer

	SetupLogger(1, Options{Console: &buf})
	logger := GetLogger("provision")
	logger.Info().Str("destination", "~/.conf").Msg("Reconciled entry")

	output := buf.String()
	assert.Contains(t, output, "Reconciled entry")
	assert.Contains(t, output, "~/.conf")
	assert.Contains(t, output, "provision")
	assert.NotContains(t, output, "\x1b[", "non-terminal console must not be colored")
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := GetLogger("test-component")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"test-component"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "provision")
	time.Sleep(time.Millisecond)
	done()

	output := buf.String()
	require.Contains(t, output, "Operation started")
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, "duration")
}
