package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the service logger. JSON to stdout by default; the dev
// environment gets the human-readable console writer.
func New(appEnv string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs

	l := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "ora-api").
		Logger()

	if appEnv == "dev" {
		l = l.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
	return l
}
