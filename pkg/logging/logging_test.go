package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreLogger(t *testing.T) {
	t.Helper()
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zerolog.Level
	}{
		{-1, zerolog.WarnLevel},
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{7, zerolog.TraceLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFor(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestSetup_WritesConsoleAndFile(t *testing.T) {
	restoreLogger(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	var console bytes.Buffer
	closeLog := Setup(Options{Verbosity: 1, Console: &console, NoColor: true})

	logger := GetLogger("makevar")
	logger.Info().Str("name", "CFLAGS").Msg("variable set")
	require.NoError(t, closeLog())

	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	assert.Contains(t, console.String(), "variable set")
	assert.Contains(t, console.String(), "component=makevar")

	data, err := os.ReadFile(filepath.Join(stateHome, "inreplace", "inreplace.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"component":"makevar"`)
	assert.Contains(t, string(data), `"name":"CFLAGS"`)
}

func TestSetup_FileDisabled(t *testing.T) {
	restoreLogger(t)
	stateHome := t.TempDir()
	t.Setenv("XDG_STATE_HOME", stateHome)

	var console bytes.Buffer
	closeLog := Setup(Options{Console: &console, NoColor: true, LogFile: DisableFile})
	log.Warn().Msg("nothing replaced")
	require.NoError(t, closeLog())

	assert.Contains(t, console.String(), "nothing replaced")
	_, err := os.Stat(filepath.Join(stateHome, "inreplace"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_UnwritableLogFile(t *testing.T) {
	restoreLogger(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	var console bytes.Buffer
	closeLog := Setup(Options{Console: &console, NoColor: true, LogFile: filepath.Join(blocker, "sub", "x.log")})
	require.NoError(t, closeLog())

	assert.Contains(t, console.String(), "Log file unavailable")
}

func TestLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "inreplace", "inreplace.log"), LogFilePath())
	})

	t.Run("falls back to xdg default", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		assert.Equal(t, "inreplace.log", filepath.Base(LogFilePath()))
	})
}

func TestLogOperationStart(t *testing.T) {
	restoreLogger(t)
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	done := LogOperationStart(GetLogger("inreplace"), "edit")
	assert.Contains(t, buf.String(), "Operation started")

	done()
	output := buf.String()
	assert.Contains(t, output, "Operation completed")
	assert.Contains(t, output, `"component":"inreplace"`)
	assert.Contains(t, output, `"operation":"edit"`)
	assert.Contains(t, output, `"duration"`)
}
