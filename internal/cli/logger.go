// Package cli provides the command-line interface for gitex.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ashraful-asif/gitextensions/internal/config"
	"github.com/ashraful-asif/gitextensions/internal/constants"
	"github.com/ashraful-asif/gitextensions/internal/logging"
)

// InitLogger creates and configures a zerolog.Logger based on verbosity
// flags. Console output goes to stderr, human-readable when stderr is a
// terminal and JSON otherwise; a rotating file in ~/.gitex/logs captures
// everything at the configured file level.
//
// Log levels:
//   - verbose=true: Debug (most detailed)
//   - quiet=true: Warn (problems only)
//   - default: Info
func InitLogger(verbose, quiet bool) zerolog.Logger {
	writers := []io.Writer{selectConsole()}
	if fileWriter := newLogFileWriter(); fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(selectLevel(verbose, quiet)).
		Hook(logging.NewSensitiveDataHook()).
		With().Timestamp().Logger()
}

// selectLevel maps verbosity flags to a zerolog level.
func selectLevel(verbose, quiet bool) zerolog.Level {
	switch {
	case verbose:
		return zerolog.DebugLevel
	case quiet:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// selectConsole returns the console writer: pretty output on a TTY,
// structured JSON when piped.
func selectConsole() io.Writer {
	if term.IsTerminal(int(os.Stderr.Fd())) {
		return zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	return os.Stderr
}

// newLogFileWriter creates the rotating log file writer. Returns nil when
// the log directory is unavailable; console-only logging is fine.
func newLogFileWriter() io.Writer {
	dir, err := config.LogDir()
	if err != nil {
		return nil
	}
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, constants.AppName+".log"),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
		Compress:   true,
	}
}
