// Package logging adapts zerolog to the wms.Logger interface.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger implements wms.Logger on top of zerolog.
type Logger struct {
	log zerolog.Logger
}

// New wraps an existing zerolog logger.
func New(log zerolog.Logger) *Logger {
	return &Logger{log: log}
}

// NewConsole returns a human-readable logger writing to w at level.
func NewConsole(w io.Writer, level zerolog.Level, noColor bool) *Logger {
	if w == nil {
		w = os.Stderr
	}

	output := zerolog.ConsoleWriter{Out: w, NoColor: noColor, TimeFormat: "15:04:05"}

	return New(zerolog.New(output).Level(level).With().Timestamp().Logger())
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(zerolog.Nop())
}

// Zerolog exposes the underlying logger.
func (l *Logger) Zerolog() zerolog.Logger {
	return l.log
}

func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.Debug().Fields(fields).Msg(msg)
}

func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.Info().Fields(fields).Msg(msg)
}

func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.Warn().Fields(fields).Msg(msg)
}

func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.Error().Fields(fields).Msg(msg)
}
