package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger provides optional verbose logging and lightweight timing helpers.
// The zero value discards everything.
type Logger struct {
	sugar   *zap.SugaredLogger
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	if writer == nil {
		return Logger{Verbose: verbose}
	}
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	if verbose {
		level.SetLevel(zap.DebugLevel)
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(writer), level)

	return Logger{sugar: zap.New(core).Sugar(), Verbose: verbose}
}

// NewFile logs to path, appending. An empty path logs to stderr.
func NewFile(path string, verbose bool) (Logger, func(), error) {
	if path == "" {
		return New(os.Stderr, verbose), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := New(file, verbose)
	return logger, func() {
		logger.Sync()
		file.Close()
	}, nil
}

func Nop() Logger {
	return Logger{}
}

func (l Logger) Infof(format string, args ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.sugar == nil {
		return
	}
	l.sugar.Warnf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.sugar == nil {
		return
	}
	l.sugar.Debugf(format, args...)
}

// With returns a logger carrying the given key/value pairs on every entry.
func (l Logger) With(keysAndValues ...any) Logger {
	if l.sugar == nil {
		return l
	}
	return Logger{sugar: l.sugar.With(keysAndValues...), Verbose: l.Verbose}
}

func (l Logger) Sync() {
	if l.sugar != nil {
		_ = l.sugar.Sync()
	}
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
