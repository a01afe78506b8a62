package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config controls how the package-level logger is set up.
type Config struct {
	// Level is one of debug, info, warn, error, fatal.
	Level string
	// Pretty switches from JSON to the human-readable console format.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var defaultLogger zerolog.Logger

// Configure (re)initializes the package-level logger. Bootstrap calls it once
// after the configuration has been loaded.
func Configure(cfg Config) {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = time.RFC3339

	switch strings.ToLower(cfg.Level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	var w io.Writer = cfg.Output
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339}
	}

	defaultLogger = zerolog.New(w).With().Timestamp().Logger()
	log.Logger = defaultLogger
}

// Default returns the configured package-level logger.
func Default() zerolog.Logger {
	return defaultLogger
}

// Debug logs a debug message.
func Debug() *zerolog.Event {
	return defaultLogger.Debug()
}

// Info logs an informational message.
func Info() *zerolog.Event {
	return defaultLogger.Info()
}

// Warn logs a warning message.
func Warn() *zerolog.Event {
	return defaultLogger.Warn()
}

// Error logs an error message.
func Error() *zerolog.Event {
	return defaultLogger.Error()
}

// Fatal logs a fatal message and exits.
func Fatal() *zerolog.Event {
	return defaultLogger.Fatal()
}

func init() {
	Configure(Config{Level: "info", Pretty: true})
}
