package fn

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Throttler invokes a function at most once per limit. Calls that arrive
// while the suppression window is open are dropped, not queued.
type Throttler[T any] struct {
	f     func(T)
	limit time.Duration
	clock clockwork.Clock
	log   logrus.FieldLogger

	mu          sync.Mutex
	suppressing bool
}

// Throttle returns a Throttler around f. Throttle panics if f is nil.
//
//	onScroll := fn.Throttle(render, 100*time.Millisecond)
//	onScroll.Call(pos)
func Throttle[T any](f func(T), limit time.Duration, opts ...Option) *Throttler[T] {
	if f == nil {
		panic("fn: Throttle called with nil func")
	}
	cfg := newConfig(opts)
	return &Throttler[T]{
		f:     f,
		limit: limit,
		clock: cfg.Clock,
		log: cfg.Logger.WithFields(logrus.Fields{
			"component": "throttle",
			"limit":     limit,
		}),
	}
}

// ThrottleFunc is [Throttle] for functions without arguments.
func ThrottleFunc(f func(), limit time.Duration, opts ...Option) func() {
	if f == nil {
		panic("fn: ThrottleFunc called with nil func")
	}
	t := Throttle(func(struct{}) { f() }, limit, opts...)
	return func() { t.Call(struct{}{}) }
}

// Call invokes f(arg) synchronously unless the suppression window is open,
// and reports whether f ran. The window opens when f returns and closes after
// limit. Safe for concurrent use.
func (t *Throttler[T]) Call(arg T) bool {
	t.mu.Lock()
	if t.suppressing {
		t.mu.Unlock()
		t.log.Debug("dropped call inside suppression window")
		return false
	}
	t.suppressing = true
	t.mu.Unlock()

	defer t.clock.AfterFunc(t.limit, t.reopen)
	t.f(arg)
	return true
}

func (t *Throttler[T]) reopen() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.suppressing = false
}
