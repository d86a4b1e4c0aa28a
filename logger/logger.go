// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const milliTimeFormat = "15:04:05.000"

// Init sets the global level from level, falling back to LOG_LEVEL and then
// info, and writes human readable lines to stderr.
func Init(level string) {
	InitWithWriter(level, os.Stderr)
}

func InitWithWriter(level string, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		level = "info"
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: milliTimeFormat,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}).With().Caller().Logger()

	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
	}
}
