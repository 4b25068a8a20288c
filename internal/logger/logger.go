package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ekisa-team/modelpath/internal/env"
)

type options struct {
	logToFile bool
	logFile   string
}

// Option configures the logger.
type Option func(*options)

// WithLogToFile enables writing log output to a rotating file in addition
// to stderr.
func WithLogToFile(enabled bool) Option {
	return func(o *options) {
		o.logToFile = enabled
	}
}

// WithLogFile sets the log file path used when file logging is enabled.
func WithLogFile(path string) Option {
	return func(o *options) {
		o.logFile = path
	}
}

// New creates a logger for the given environment: a colorized text handler
// for development, JSON for production.
func New(environment env.Environment, opts ...Option) *slog.Logger {
	o := options{
		logFile: "logs/modelpath.log",
	}
	for _, opt := range opts {
		opt(&o)
	}

	var w io.Writer = os.Stderr
	if o.logToFile {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   o.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		})
	}

	if environment == env.Production {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level: slog.LevelDebug,
	}))
}
