package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

const logFileName = "service.log"

var ErrUnsupportedLogger = errors.New("logger not supported: supported loggers: [zap, zerolog]")

type Logger interface {
	Init()

	Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Debugf(template string, args ...any)

	Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Infof(template string, args ...any)

	Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Warnf(template string, args ...any)

	Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Errorf(template string, args ...any)

	Fatal(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any)
	Fatalf(template string, args ...any)

	Sync() error
}

type LoggerConfig struct {
	AppName  string
	FilePath string
	Encoding string
	Level    string
	Logger   string

	// Output receives every entry. Defaults to stdout.
	Output io.Writer
}

func NewLogger(cfg *LoggerConfig) (Logger, error) {
	switch cfg.Logger {
	case "zap":
		return newZapLogger(cfg), nil
	case "zerolog":
		return newZeroLogger(cfg), nil
	}

	return nil, fmt.Errorf("%w: got %q", ErrUnsupportedLogger, cfg.Logger)
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return newZeroLogger(&LoggerConfig{Output: io.Discard, Level: "disabled"})
}

func (cfg *LoggerConfig) writers() []io.Writer {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	writers := []io.Writer{out}
	if cfg.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.FilePath, logFileName),
			MaxSize:    10, // megabytes
			MaxBackups: 5,
			MaxAge:     30, // days
			Compress:   true,
		})
	}

	return writers
}

// extraWithCategory copies extra so callers can reuse their maps.
func extraWithCategory(cat Category, sub SubCategory, extra map[ExtraKey]any) map[ExtraKey]any {
	params := make(map[ExtraKey]any, len(extra)+2)
	for k, v := range extra {
		params[k] = v
	}
	params["Category"] = string(cat)
	params["SubCategory"] = string(sub)
	return params
}
