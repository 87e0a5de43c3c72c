// Package logger provides structured logging for the editor using zap.
// The geometry engine itself never logs; only the editor shell and the
// command-line tools do.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the shared logger instance. Nil until Init is called.
var Log *zap.Logger

// Sugar is the sugared form of Log for printf-style call sites.
var Sugar *zap.SugaredLogger

// Options configures log output. A zero Options logs to stdout only at
// info level.
type Options struct {
	Level      string // debug, info, warn, error
	File       string // rotating log file path; empty disables file output
	MaxSizeMB  int    // rotate after this many megabytes (default 20)
	MaxBackups int    // rotated files to keep (default 3)
	Console    bool   // also log to stdout
}

// Init builds the shared logger. Safe to call again to reconfigure, e.g.
// from tests that want a silent logger.
func Init(opts Options) error {
	var cores []zapcore.Core
	lvl := parseLevel(opts.Level)

	if opts.Console {
		enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
			EncodeLevel:      zapcore.CapitalColorLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl))
	}

	if opts.File != "" {
		maxSize := opts.MaxSizeMB
		if maxSize <= 0 {
			maxSize = 20
		}
		maxBackups := opts.MaxBackups
		if maxBackups <= 0 {
			maxBackups = 3
		}
		writer := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			Compress:   true,
			LocalTime:  true,
		}
		enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(writer), lvl))
	}

	Log = zap.New(zapcore.NewTee(cores...))
	Sugar = Log.Sugar()
	return nil
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes buffered entries. Call before process exit.
func Sync() {
	if Log != nil {
		_ = Log.Sync()
	}
}
