package logger

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

// InitLogging routes log output to the given file, or stderr when the path
// is empty or the file cannot be opened.
func InitLogging(logFilePath string) {
	if logFilePath == "" {
		return
	}
	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Error().Err(err).Str("path", logFilePath).Msg("failed to open log file, keeping stderr")
		return
	}
	log = zerolog.New(f).With().Timestamp().Logger()
}

func InfoLog(ctx context.Context, msg string) {
	log.Info().Msg(msg)
}

func DebugLog(ctx context.Context, format string, args ...interface{}) {
	log.Debug().Msg(fmt.Sprintf(format, args...))
}

func ErrorLog(ctx context.Context, msg string) {
	log.Error().Msg(msg)
}
