package logger

import (
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New() zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(os.Stdout).
		With().
		Timestamp().
		Logger()

	logger = logger.Level(zerolog.InfoLevel)

	return logger
}

// WithLevel rebuilds the process logger once the configured level is known.
// Unknown level strings fall back to info.
func WithLevel(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return New().Level(parsed)
}

var Module = fx.Provide(New)
