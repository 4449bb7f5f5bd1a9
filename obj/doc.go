// Package obj provides helpers for dynamic, JSON-shaped values: path access,
// key selection, recursive merge, deep clone, emptiness and deep equality.
//
// # Dynamic values
//
// Values are classified by [KindOf] into a closed set of kinds: null, bool,
// number, string, sequence (slices and arrays), record (string-keyed maps),
// callable and other. The helpers fast-path the shapes produced by
// encoding/json (map[string]any, []any, float64, string, bool) and fall back
// to reflection for typed maps and slices:
//
//	user := map[string]any{
//	    "name":    "Alice",
//	    "address": map[string]any{"city": "London"},
//	    "roles":   []any{"admin", "user"},
//	}
//
//	obj.Get(user, "address.city")            // → "London"
//	obj.Get(user, "address.country", "UK")   // → "UK"
//	obj.Pick(user, "name")                   // → {"name": "Alice"}
//	obj.IsEqual(user, obj.CloneDeep(user))   // → true
//
// # Failure model
//
// Nothing in this package returns an error or panics on odd input. Missing
// paths resolve to the supplied default, unknown keys are ignored, and values
// of unsupported kinds are treated as opaque.
package obj
