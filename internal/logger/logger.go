package logger

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	log  zerolog.Logger //nolint:gochecknoglobals // process logger
	once sync.Once      //nolint:gochecknoglobals // process logger
)

// Get returns the process logger. The first call wins: a debug flag
// passed later does not change the level.
func Get(debug ...bool) zerolog.Logger {
	once.Do(func() {
		level := zerolog.InfoLevel
		if len(debug) > 0 && debug[0] {
			level = zerolog.DebugLevel
		}
		out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		log = zerolog.New(out).Level(level).With().Timestamp().Logger()
	})
	return log
}
