package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default info level", 0, zerolog.InfoLevel},
		{"debug level", 1, zerolog.DebugLevel},
		{"trace level", 2, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLogger(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}

			logPath := filepath.Join(tempDir, "idot", "idot.log")
			if _, err := os.Stat(logPath); os.IsNotExist(err) {
				t.Errorf("Log file was not created at %s", logPath)
			}
		})
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	got := getLogFilePath()
	assert.Equal(t, filepath.Join("/custom/state", "idot", "idot.log"), got)
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)
	logger := base.With().Str("component", "linker").Logger()
	logger.Info().Msg("hello")

	assert.True(t, strings.Contains(buf.String(), `"component":"linker"`))

	// GetLogger must not panic regardless of global state
	linkerLogger := GetLogger("linker")
	linkerLogger.Debug().Msg("noop")
}

func TestDiscardDropsEvents(t *testing.T) {
	logger := Discard()
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogOperationStart(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := LogOperationStart(logger, "create")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"create"`)
}

func TestColorDisabledByNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, colorEnabled(os.Stderr))
}

func TestSetupLoggerReusesLogFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	first := t.TempDir()
	t.Setenv("XDG_STATE_HOME", first)
	SetupLogger(0)
	handle := logFile.handle
	assert.NotNil(t, handle)

	SetupLogger(1)
	assert.Same(t, handle, logFile.handle)

	// A new state directory closes the old handle
	second := t.TempDir()
	t.Setenv("XDG_STATE_HOME", second)
	SetupLogger(0)
	assert.NotSame(t, handle, logFile.handle)
	assert.Equal(t, filepath.Join(second, "idot", "idot.log"), logFile.path)
	_, err := handle.Write([]byte("x"))
	assert.Error(t, err)

	assert.NoError(t, CloseLogFile())
	assert.Nil(t, logFile.handle)
	assert.NoError(t, CloseLogFile())
}
