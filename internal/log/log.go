// Package log sets up the process-wide slog logger.
package log

import (
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	charmlog "charm.land/log/v2"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	initOnce    sync.Once
	initialized atomic.Bool
)

// Setup installs the default slog logger. Records are written as JSON to a
// rotating logFile. When debug is set, records are also printed to console.
func Setup(logFile string, debug bool, console io.Writer) {
	initOnce.Do(func() {
		logRotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // Max size in MB
			MaxBackups: 0,  // Number of backups
			MaxAge:     30, // Days
			Compress:   false,
		}

		level := slog.LevelInfo
		if debug {
			level = slog.LevelDebug
		}

		handlers := []slog.Handler{
			slog.NewJSONHandler(logRotator, &slog.HandlerOptions{
				Level:     level,
				AddSource: true,
			}),
		}
		if debug && console != nil {
			handlers = append(handlers, NewConsoleHandler(console, level))
		}

		slog.SetDefault(slog.New(slogmulti.Fanout(handlers...)))
		initialized.Store(true)
	})
}

// Initialized reports whether Setup has run.
func Initialized() bool {
	return initialized.Load()
}

// NewConsoleHandler returns a human readable handler writing to w.
func NewConsoleHandler(w io.Writer, level slog.Level) slog.Handler {
	return charmlog.NewWithOptions(w, charmlog.Options{
		Level:           charmlog.Level(level),
		ReportTimestamp: true,
		Prefix:          "vlist",
	})
}
