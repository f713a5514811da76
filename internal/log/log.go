// Package log provides the component loggers the CLI commands use.
package log

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	base zerolog.Logger
)

func initBase() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// Component returns a logger tagged with the given component name, the way
// the teacher's PLONK prover tags its logger with the curve name.
func Component(name string) zerolog.Logger {
	once.Do(initBase)
	return base.With().Str("component", name).Logger()
}

// SetLevel adjusts the global zerolog level.
func SetLevel(lvl zerolog.Level) {
	zerolog.SetGlobalLevel(lvl)
}
