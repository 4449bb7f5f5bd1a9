package fn

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Debouncer delays invoking a function until wait has elapsed since the most
// recent [Debouncer.Call]. Only the trailing edge fires, with the argument of
// the last call.
//
// Each Debouncer owns a single pending invocation; separate Debouncers built
// from the same function are fully independent.
type Debouncer[T any] struct {
	f     func(T)
	wait  time.Duration
	clock clockwork.Clock
	log   logrus.FieldLogger

	mu      sync.Mutex
	pending clockwork.Timer
	gen     uint64
}

// Debounce returns a Debouncer that invokes f with the latest argument once
// wait has passed without another call.
//
//	save := fn.Debounce(func(doc string) { store.Save(doc) }, 300*time.Millisecond)
//	save.Call(draft) // many times; Save runs once, 300ms after the last call
//
// f runs on the clock's timer goroutine. Debounce panics if f is nil.
func Debounce[T any](f func(T), wait time.Duration, opts ...Option) *Debouncer[T] {
	if f == nil {
		panic("fn: Debounce called with nil func")
	}
	cfg := newConfig(opts)
	return &Debouncer[T]{
		f:     f,
		wait:  wait,
		clock: cfg.Clock,
		log: cfg.Logger.WithFields(logrus.Fields{
			"component": "debounce",
			"wait":      wait,
		}),
	}
}

// DebounceFunc is [Debounce] for functions without arguments.
func DebounceFunc(f func(), wait time.Duration, opts ...Option) func() {
	if f == nil {
		panic("fn: DebounceFunc called with nil func")
	}
	d := Debounce(func(struct{}) { f() }, wait, opts...)
	return func() { d.Call(struct{}{}) }
}

// Call cancels any pending invocation and schedules a new one with arg.
// It returns immediately and is safe for concurrent use.
func (d *Debouncer[T]) Call(arg T) {
	d.mu.Lock()
	if d.pending != nil && d.pending.Stop() {
		d.log.Debug("superseded pending call")
	}
	d.pending = nil
	d.gen++
	gen := d.gen
	d.mu.Unlock()

	// Scheduled outside the lock: some clocks run expired callbacks inline.
	t := d.clock.AfterFunc(d.wait, func() { d.fire(gen, arg) })

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen == d.gen {
		d.pending = t
	} else {
		t.Stop()
	}
}

// fire invokes f when gen is still the latest scheduled call.
func (d *Debouncer[T]) fire(gen uint64, arg T) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.gen++
	d.pending = nil
	d.mu.Unlock()

	d.log.Debug("invoking debounced func")
	d.f(arg)
}
