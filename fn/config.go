package fn

import (
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Config holds the runtime dependencies shared by [Debouncer] and [Throttler].
type Config struct {
	// Clock schedules deferred invocations. Defaults to the wall clock.
	Clock clockwork.Clock

	// Logger receives Debug entries when calls are superseded, fired or
	// dropped. Defaults to a logger that discards everything.
	Logger logrus.FieldLogger
}

// DefaultConfig returns a [Config] backed by the real clock and a silent
// logger.
func DefaultConfig() Config {
	return Config{
		Clock:  clockwork.NewRealClock(),
		Logger: discardLogger(),
	}
}

// Option adjusts a [Config].
type Option func(*Config)

// WithClock schedules invocations on c. Tests typically pass a
// clockwork.NewFakeClock() and drive it with Advance.
func WithClock(c clockwork.Clock) Option {
	return func(cfg *Config) {
		cfg.Clock = c
	}
}

// WithLogger routes debug logging to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

func newConfig(opts []Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Clock == nil {
		cfg.Clock = clockwork.NewRealClock()
	}
	if cfg.Logger == nil {
		cfg.Logger = discardLogger()
	}
	return cfg
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
