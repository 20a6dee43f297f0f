package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	appName     = "idot"
	logFileName = "idot.log"
)

// logFile is the open log file, reused while its path stays the same
var logFile struct {
	sync.Mutex
	path   string
	handle *os.File
}

// SetupLogger configures the global logger based on verbosity level.
// Events go to a console writer on stderr and to a log file under the
// XDG state directory.
func SetupLogger(verbosity int) {
	zerolog.SetGlobalLevel(levelFor(verbosity))

	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !colorEnabled(os.Stderr),
	}

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	logPath := getLogFilePath()
	logFileHandle, err := openLogFile(logPath)
	if err == nil {
		writers = append(writers, logFileHandle)
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	// If we couldn't create the log file, log the error now with the new logger
	if err != nil {
		log.Warn().Err(err).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	if verbosity >= 1 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// levelFor maps the -v count to a level. Info is the floor so link events
// are always visible.
func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.InfoLevel
	case verbosity == 1:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// Discard returns a logger that drops every event
func Discard() zerolog.Logger {
	return zerolog.Nop()
}

func colorEnabled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// getLogFilePath returns the path to the log file.
// XDG_STATE_HOME wins when set at call time, otherwise xdg.StateHome is used.
func getLogFilePath() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		stateHome = xdg.StateHome
	}
	if stateHome == "" {
		return logFileName
	}
	return filepath.Join(stateHome, appName, logFileName)
}

// openLogFile returns the handle for logPath. A handle on another path is
// closed first, so reconfiguring never leaks descriptors.
func openLogFile(logPath string) (*os.File, error) {
	logFile.Lock()
	defer logFile.Unlock()

	if logFile.handle != nil && logFile.path == logPath {
		return logFile.handle, nil
	}
	_ = closeLogFileLocked()

	handle, err := setupLogFile(logPath)
	if err != nil {
		return nil, err
	}
	logFile.path, logFile.handle = logPath, handle
	return handle, nil
}

// CloseLogFile closes the log file opened by SetupLogger, if any
func CloseLogFile() error {
	logFile.Lock()
	defer logFile.Unlock()
	return closeLogFileLocked()
}

func closeLogFileLocked() error {
	if logFile.handle == nil {
		return nil
	}
	err := logFile.handle.Close()
	logFile.path, logFile.handle = "", nil
	return err
}

// setupLogFile creates the log file and its parent directories
func setupLogFile(logPath string) (*os.File, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, nil
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}
