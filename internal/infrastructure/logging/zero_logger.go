package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

var zeroLogLevelMapping = map[string]zerolog.Level{
	"debug":    zerolog.DebugLevel,
	"info":     zerolog.InfoLevel,
	"warn":     zerolog.WarnLevel,
	"error":    zerolog.ErrorLevel,
	"fatal":    zerolog.FatalLevel,
	"disabled": zerolog.Disabled,
}

type zeroLogger struct {
	cfg    *LoggerConfig
	logger zerolog.Logger
}

func newZeroLogger(cfg *LoggerConfig) *zeroLogger {
	l := &zeroLogger{cfg: cfg}
	l.Init()
	return l
}

func (l *zeroLogger) getLogLevel() zerolog.Level {
	level, exists := zeroLogLevelMapping[strings.ToLower(l.cfg.Level)]
	if !exists {
		return zerolog.InfoLevel
	}
	return level
}

func (l *zeroLogger) Init() {
	writers := l.cfg.writers()
	if l.cfg.Encoding == "console" {
		writers[0] = zerolog.ConsoleWriter{Out: writers[0]}
	}

	var out io.Writer = writers[0]
	if len(writers) > 1 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	l.logger = zerolog.New(out).
		Level(l.getLogLevel()).
		With().
		Timestamp().
		Str(string(AppName), l.cfg.AppName).
		Str(string(LoggerName), "Zerolog").
		Logger()
}

func (l *zeroLogger) Debug(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Debug().Fields(logParamsToZeroParams(extraWithCategory(cat, sub, extra))).Msg(msg)
}

func (l *zeroLogger) Debugf(template string, args ...any) {
	l.logger.Debug().Msgf(template, args...)
}

func (l *zeroLogger) Info(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Info().Fields(logParamsToZeroParams(extraWithCategory(cat, sub, extra))).Msg(msg)
}

func (l *zeroLogger) Infof(template string, args ...any) {
	l.logger.Info().Msgf(template, args...)
}

func (l *zeroLogger) Warn(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Warn().Fields(logParamsToZeroParams(extraWithCategory(cat, sub, extra))).Msg(msg)
}

func (l *zeroLogger) Warnf(template string, args ...any) {
	l.logger.Warn().Msgf(template, args...)
}

func (l *zeroLogger) Error(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Error().Fields(logParamsToZeroParams(extraWithCategory(cat, sub, extra))).Msg(msg)
}

func (l *zeroLogger) Errorf(template string, args ...any) {
	l.logger.Error().Msgf(template, args...)
}

func (l *zeroLogger) Fatal(cat Category, sub SubCategory, msg string, extra map[ExtraKey]any) {
	l.logger.Fatal().Fields(logParamsToZeroParams(extraWithCategory(cat, sub, extra))).Msg(msg)
}

func (l *zeroLogger) Fatalf(template string, args ...any) {
	l.logger.Fatal().Msgf(template, args...)
}

func (l *zeroLogger) Sync() error {
	return nil
}
