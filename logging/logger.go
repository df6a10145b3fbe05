// Package logging wires structured logging for the routing core using
// slog, with optional file rotation via lumberjack.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the package-level logger every caller writes through.
var Log *slog.Logger

func init() {
	Init("info")
}

// Config is the full logging configuration: level, output target, and
// (when Output=="file") the lumberjack rotation settings.
type Config struct {
	Level      string // debug, info, warn, error
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// Init initialises Log at the given level, writing JSON to stdout.
func Init(level string) {
	InitWithConfig(Config{Level: level, Output: "stdout"})
}

// InitWithConfig initialises Log from a full Config.
func InitWithConfig(cfg Config) {
	var lvl slog.Level
	switch cfg.Level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	var writer io.Writer
	switch cfg.Output {
	case "stderr":
		writer = os.Stderr
	case "file":
		if cfg.FilePath == "" {
			cfg.FilePath = "logs/gdrsa.log"
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			writer = os.Stdout
		} else {
			writer = &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   cfg.Compress,
			}
		}
	default:
		writer = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: lvl, AddSource: lvl == slog.LevelDebug}
	Log = slog.New(slog.NewJSONHandler(writer, opts))
}

// WithAlgorithm returns a logger tagged with the search algorithm that
// produced (or is producing) a result.
func WithAlgorithm(alg fmt.Stringer) *slog.Logger {
	return Log.With("algorithm", alg.String())
}

// WithDemand returns a logger tagged with a demand's endpoints.
func WithDemand(src, dst int) *slog.Logger {
	return Log.With("src", src, "dst", dst)
}

// Debug logs at debug level through Log.
func Debug(msg string, args ...any) { Log.Debug(msg, args...) }

// Info logs at info level through Log.
func Info(msg string, args ...any) { Log.Info(msg, args...) }

// Warn logs at warn level through Log.
func Warn(msg string, args ...any) { Log.Warn(msg, args...) }

// Error logs at error level through Log.
func Error(msg string, args ...any) { Log.Error(msg, args...) }
