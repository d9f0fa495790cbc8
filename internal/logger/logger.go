// Package logger builds the application's slog logger from configuration.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config holds the logger configuration.
type Config struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// NewLogger initializes a new slog logger based on the provided configuration.
// A nil output selects the destination named in the config; passing an
// explicit writer (e.g. in tests) overrides it.
func NewLogger(cfg Config, output io.Writer) *slog.Logger {
	if output == nil {
		switch cfg.Output {
		case "stdout":
			output = os.Stdout
		case "file":
			file, err := os.OpenFile("reviewer.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
				output = os.Stderr
			} else {
				output = file
			}
		case "stderr":
			fallthrough
		default:
			output = os.Stderr
		}
	}

	level := new(slog.Level)
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = new(slog.Level)
	}

	var handler slog.Handler
	switch cfg.Format {
	case "json":
		handler = slog.NewJSONHandler(output, &slog.HandlerOptions{Level: level})
	case "text":
		fallthrough
	default:
		handler = slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})
	}

	return slog.New(handler)
}
