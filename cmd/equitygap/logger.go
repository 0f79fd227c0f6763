package main

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// zerologLogger implements calculation.Logger on top of zerolog
type zerologLogger struct {
	log zerolog.Logger
}

func newLogger(w io.Writer, debug bool) zerologLogger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	l := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("component", "calculation").Logger()
	return zerologLogger{log: l}
}

func (z zerologLogger) Debugf(format string, args ...any) {
	z.log.Debug().Msgf(format, args...)
}
func (z zerologLogger) Infof(format string, args ...any) {
	z.log.Info().Msgf(format, args...)
}
func (z zerologLogger) Warnf(format string, args ...any) {
	z.log.Warn().Msgf(format, args...)
}
func (z zerologLogger) Errorf(format string, args ...any) {
	z.log.Error().Msgf(format, args...)
}
