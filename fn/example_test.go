package fn_test

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/hasbyte1/go-lodash-lite/fn"
)

func ExampleDebounce() {
	clock := clockwork.NewFakeClock()
	done := make(chan string, 1)

	search := fn.Debounce(func(q string) { done <- q }, 300*time.Millisecond, fn.WithClock(clock))
	search.Call("g")
	search.Call("go")
	search.Call("gopher")

	clock.Advance(300 * time.Millisecond)
	fmt.Println("searching for", <-done)
	// Output: searching for gopher
}

func ExampleThrottle() {
	clock := clockwork.NewFakeClock()
	ping := fn.Throttle(func(id int) { fmt.Println("ping", id) }, time.Second, fn.WithClock(clock))

	for id := 1; id <= 3; id++ {
		if !ping.Call(id) {
			fmt.Println("dropped", id)
		}
	}
	// Output:
	// ping 1
	// dropped 2
	// dropped 3
}
