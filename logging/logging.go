/*
NAME
  logging.go

DESCRIPTION
  Structured logging adapter for the director container decoder and
  playback engine.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package logging provides the Logger interface used by this module's
// container and playback packages, along with a zap-backed implementation
// and a no-op fallback.
package logging

import (
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log levels, matching the levels a Logger implementation is expected to
// support. Numerically increasing severity.
const (
	Debug int8 = iota
	Info
	Warning
	Error
	Fatal
)

// Logger is implemented by anything that can receive leveled, structured
// log messages from this module. A nil Logger is never passed around
// internally; callers that don't want logging use NewNop.
type Logger interface {
	SetLevel(int8)
	Log(level int8, message string, params ...interface{})
}

// nopLogger discards everything. Used when no Logger is configured so the
// core never performs log I/O on its own.
type nopLogger struct{}

func (nopLogger) SetLevel(int8)                               {}
func (nopLogger) Log(level int8, message string, params ...interface{}) {}

// NewNop returns a Logger that discards all messages.
func NewNop() Logger { return nopLogger{} }

// zapLogger adapts a *zap.SugaredLogger to the Logger interface.
type zapLogger struct {
	level *zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// Config configures a file-backed, rotated zap logger.
type Config struct {
	// Filename is the log file path. If empty, logs go to stderr.
	Filename string
	// MaxSizeMB is the maximum size in megabytes before rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated files to retain.
	MaxBackups int
	// MaxAgeDays is the maximum age in days to retain rotated files.
	MaxAgeDays int
}

// New builds a Logger backed by zap, writing to a lumberjack-rotated file
// when cfg.Filename is set.
func New(cfg Config) Logger {
	level := zap.NewAtomicLevelAt(toZapLevel(Info))

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "time"
	encoder := zapcore.NewJSONEncoder(encoderCfg)

	var ws zapcore.WriteSyncer
	if cfg.Filename != "" {
		ws = zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
		})
	} else {
		ws = zapcore.Lock(zapcore.AddSync(os.Stderr))
	}

	core := zapcore.NewCore(encoder, ws, level)
	l := zap.New(core)

	return &zapLogger{level: &level, sugar: l.Sugar()}
}

func (z *zapLogger) SetLevel(level int8) {
	z.level.SetLevel(toZapLevel(level))
}

func (z *zapLogger) Log(level int8, message string, params ...interface{}) {
	switch {
	case level <= Debug:
		z.sugar.Debugw(message, params...)
	case level == Info:
		z.sugar.Infow(message, params...)
	case level == Warning:
		z.sugar.Warnw(message, params...)
	case level == Error:
		z.sugar.Errorw(message, params...)
	default:
		z.sugar.Errorw(message, params...)
	}
}

func toZapLevel(level int8) zapcore.Level {
	switch level {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	case Fatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
