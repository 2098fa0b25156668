// Package logger builds the zerolog loggers handed to the client, fetcher
// and listener.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type Config struct {
	Level      string `yaml:"level"`
	TimeFormat string `yaml:"timeFormat"`
	Pretty     bool   `yaml:"pretty"`
}

var DefaultConfig = Config{
	Level:      "info",
	TimeFormat: time.RFC3339,
}

func New() zerolog.Logger {
	return NewWithConfig(DefaultConfig)
}

func NewWithConfig(config Config) zerolog.Logger {
	return NewWithWriter(config, os.Stderr)
}

// NewWithWriter is NewWithConfig with an explicit sink.
func NewWithWriter(config Config, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(config.Level)
	if err != nil || config.Level == "" {
		level = zerolog.InfoLevel
	}

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	writer := out
	if config.Pretty {
		writer = zerolog.ConsoleWriter{
			Out:         out,
			TimeFormat:  time.RFC3339,
			FormatLevel: func(i interface{}) string { return colorizeLevel(i) },
		}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("service", "quartz").
		Logger()
}

func colorizeLevel(i interface{}) string {
	level, _ := i.(string)
	switch level {
	case "trace":
		return "\033[35m" + level + "\033[0m"
	case "debug":
		return "\033[36m" + level + "\033[0m"
	case "info":
		return "\033[32m" + level + "\033[0m"
	case "warn":
		return "\033[33m" + level + "\033[0m"
	case "error", "fatal", "panic":
		return "\033[31m" + level + "\033[0m"
	default:
		return level
	}
}
