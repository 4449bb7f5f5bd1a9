// Package fn wraps functions with timing control: trailing-edge debouncing
// and drop-on-busy throttling.
//
//	search := fn.Debounce(func(q string) { runQuery(q) }, 300*time.Millisecond)
//	for _, q := range keystrokes {
//	    search.Call(q) // runQuery fires once, with the last query
//	}
//
//	ping := fn.Throttle(func(id int) { notify(id) }, time.Second)
//	ping.Call(1) // runs now
//	ping.Call(2) // dropped: still inside the one-second window
//
// Neither wrapper blocks: scheduling is handed to a clock
// (github.com/jonboulle/clockwork), the real one by default. Pass
// [WithClock] with a fake clock to drive time by hand in tests, and
// [WithLogger] to observe superseded and dropped calls at Debug level.
//
// Pending debounced calls cannot be cancelled from outside; they are only
// ever replaced by a newer call.
package fn
