// Package logger wraps zerolog behind a process-wide singleton. Call Init
// once from main; everything else receives the logger by injection and only
// falls back to Get in places where wiring one through is not worth it.
package logger

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the singleton at startup.
type Options struct {
	// Level is the minimum level emitted (trace, debug, info, warn, error).
	// Unknown values fall back to info.
	Level string
	// Pretty switches to the human-readable console writer. Keep it off in
	// production so log lines stay machine-parseable JSON.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	once     sync.Once
	instance zerolog.Logger
	ready    bool
)

// Init builds the singleton logger. Subsequent calls return the logger from
// the first call unchanged.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		lvl, err := zerolog.ParseLevel(opts.Level)
		if err != nil || lvl == zerolog.NoLevel {
			lvl = zerolog.InfoLevel
		}
		zerolog.SetGlobalLevel(lvl)

		var out io.Writer = os.Stdout
		if opts.Output != nil {
			out = opts.Output
		}
		if opts.Pretty {
			out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		}

		instance = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
		ready = true
	})
	return instance
}

// Get returns the singleton. Panics when Init has not run; a silent
// zero-value logger would swallow output instead.
func Get() zerolog.Logger {
	if !ready {
		panic("logger: Init must be called before Get")
	}
	return instance
}
