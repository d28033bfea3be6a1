// Package logger provides a thin wrapper around zerolog.Logger with the
// constructor used throughout the application.
package logger

import (
	"os"
	"runtime"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available
// directly on *Logger.
type Logger struct {
	zerolog.Logger
}

// New constructs a *Logger for the given role label (e.g. "api", "seed").
// Output is JSON on stdout with a timestamp and a "func" caller field.
func New(role string) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}
