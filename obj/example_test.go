package obj_test

import (
	"fmt"

	"github.com/hasbyte1/go-lodash-lite/obj"
)

func newUser() map[string]any {
	return map[string]any{
		"id":   1,
		"name": "John Doe",
		"address": map[string]any{
			"street": "123 Main St",
			"city":   "New York",
			"zip":    "10001",
		},
		"roles": []any{"admin", "user"},
	}
}

func ExampleGet() {
	user := newUser()
	fmt.Println(obj.Get(user, "address.city"))
	fmt.Println(obj.Get(user, "address.country", "USA"))
	// Output:
	// New York
	// USA
}

func ExamplePick() {
	fmt.Println(obj.Pick(newUser(), "id", "name"))
	// Output: map[id:1 name:John Doe]
}

func ExampleOmit() {
	fmt.Println(obj.Omit(newUser(), "address", "roles"))
	// Output: map[id:1 name:John Doe]
}

func ExampleMerge() {
	merged := obj.Merge(
		map[string]any{"a": 1},
		map[string]any{"b": 2},
		map[string]any{"c": 3},
	)
	fmt.Println(merged)
	// Output: map[a:1 b:2 c:3]
}

func ExampleCloneDeep() {
	original := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	clone := obj.Clone(original)
	clone["b"].(map[string]any)["c"] = 3

	fmt.Println(original)
	fmt.Println(clone)
	// Output:
	// map[a:1 b:map[c:2]]
	// map[a:1 b:map[c:3]]
}

func ExampleIsEmpty() {
	fmt.Println(obj.IsEmpty(map[string]any{}))
	fmt.Println(obj.IsEmpty([]int{1, 2, 3}))
	// Output:
	// true
	// false
}

func ExampleIsEqual() {
	fmt.Println(obj.IsEqual(map[string]any{"a": 1, "b": 2}, map[string]any{"b": 2, "a": 1}))
	fmt.Println(obj.IsEqual([]int{1, 2, 3}, []int{1, 2, 3}))
	// Output:
	// true
	// true
}
