// Package logger wraps zerolog with a console writer and per-module fields.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var DefaultLogLevel = zerolog.InfoLevel

// Output is where loggers created by InitLogger write.
var Output io.Writer = os.Stderr

type Logger struct {
	logger *zerolog.Logger
}

func InitLogger(level string, fields map[string]string) *Logger {
	writer := zerolog.ConsoleWriter{
		Out:     Output,
		NoColor: true,
		FormatLevel: func(i any) string {
			level := strings.ToUpper(fmt.Sprintf("%s", i))
			switch level {
			case "DEBUG":
				return "\033[36m" + level + "\033[0m"
			case "INFO":
				return "\033[32m" + level + "\033[0m"
			case "WARN":
				return "\033[33m" + level + "\033[0m"
			case "ERROR":
				return "\033[31m" + level + "\033[0m"
			default:
				return level
			}
		},
	}
	context := zerolog.New(writer).With().Timestamp()
	for k, v := range fields {
		context = context.Str(k, v)
	}
	entry := context.Logger()
	if parsed, err := zerolog.ParseLevel(strings.ToLower(level)); err == nil && len(level) > 0 {
		entry = entry.Level(parsed)
	}
	return &Logger{logger: &entry}
}

// ParseLogLevel sets the global level, falling back to DefaultLogLevel when
// level does not parse.
func ParseLogLevel(level string) error {
	if len(level) == 0 {
		return nil
	}
	parsed, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		zerolog.SetGlobalLevel(DefaultLogLevel)
		return err
	}
	zerolog.SetGlobalLevel(parsed)
	return nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	entry := zerolog.Nop()
	return &Logger{logger: &entry}
}

// With returns a child logger carrying an extra field.
func (l *Logger) With(key string, value any) *Logger {
	entry := l.logger.With().Interface(key, value).Logger()
	return &Logger{logger: &entry}
}

// Zerolog exposes the underlying logger for structured events.
func (l *Logger) Zerolog() *zerolog.Logger {
	return l.logger
}

func (l *Logger) Info(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l *Logger) Trace(format string, args ...any) {
	l.logger.Trace().Msgf(format, args...)
}
