// Package logger builds the zap logger. Output goes to a rotating file so it
// never mixes with the frames drawn on the terminal.
package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation policy for the log file
const (
	MaxSizeMB  = 10
	MaxBackups = 3
	MaxAgeDays = 7
)

// New opens a console-encoded logger writing to filePath at the given level.
// Every entry carries a per-run session id. The returned close func syncs
// the logger and closes the file.
func New(filePath, level string) (*zap.Logger, func(), error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    MaxSizeMB,
		MaxBackups: MaxBackups,
		MaxAge:     MaxAgeDays,
	}

	log := NewWithSink(zapcore.AddSync(lj), lvl)
	closeFn := func() {
		_ = log.Sync()
		_ = lj.Close()
	}
	return log, closeFn, nil
}

// NewWithSink builds the logger on an arbitrary sink.
func NewWithSink(ws zapcore.WriteSyncer, lvl zapcore.Level) *zap.Logger {
	encCfg := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, lvl)

	return zap.New(core, zap.AddCaller()).
		With(zap.String("session", uuid.NewString()))
}

// Nop returns a logger that discards everything
func Nop() *zap.Logger {
	return zap.NewNop()
}
