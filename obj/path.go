package obj

import (
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Path access
//
// A path is either a dot-separated string ("user.address.city") or an
// explicit list of segments ([]string{"user", "address", "city"}). Segments
// address keys of records and, when numeric, indexes of sequences:
//
//	m := map[string]any{
//	    "user": map[string]any{
//	        "roles": []any{"admin", "user"},
//	    },
//	}
//
//	Get(m, "user.roles.1")        → "user"
//	Get(m, "user.email", "n/a")   → "n/a"
//
// Literal dots inside key names cannot be escaped in the string form; use
// GetPath with explicit segments for such keys.
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value at the dot-notation path inside object.
// Returns def[0] (or nil) when the path does not resolve.
//
//	Get(m, "user.address.city")        // "London"
//	Get(m, "user.missing", "default")  // "default"
//	Get(nil, "a.b", 5)                 // 5
func Get(object any, path string, def ...any) any {
	return GetPath(object, splitPath(path), def...)
}

// GetPath is like [Get] but takes the path as explicit segments.
func GetPath(object any, segments []string, def ...any) any {
	if v, ok := LookupPath(object, segments); ok {
		return v
	}
	if len(def) > 0 {
		return def[0]
	}
	return nil
}

// GetAs returns the value at path converted to T, or def when the path does
// not resolve or holds a value of another type.
//
//	port := GetAs(cfg, "db.port", 5432)
func GetAs[T any](object any, path string, def T) T {
	v, ok := Lookup(object, path)
	if !ok {
		return def
	}
	typed, ok := v.(T)
	if !ok {
		return def
	}
	return typed
}

// Lookup resolves the dot-notation path inside object. The boolean is false
// when a segment is missing, an intermediate value is null, or a segment
// addresses a value that is neither a record nor a sequence.
//
// A key that is present with a nil value resolves to (nil, true).
func Lookup(object any, path string) (any, bool) {
	return LookupPath(object, splitPath(path))
}

// LookupPath is like [Lookup] but takes the path as explicit segments.
// With no segments it resolves to object itself, unless object is null.
func LookupPath(object any, segments []string) (any, bool) {
	current := object
	if KindOf(current) == KindNull {
		return nil, false
	}
	for _, seg := range segments {
		if KindOf(current) == KindNull {
			return nil, false
		}
		next, ok := child(current, seg)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Has reports whether the dot-notation path resolves inside object.
func Has(object any, path string) bool {
	_, ok := Lookup(object, path)
	return ok
}

// Set writes value into m at the dot-notation path, creating intermediate
// records as needed. Intermediate values that are not map[string]any are
// replaced. Set on a nil map is a no-op, since there is nowhere to write.
//
//	Set(m, "user.address.postcode", "EC1")
func Set(m map[string]any, path string, value any) {
	if m == nil {
		return
	}
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		m[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := m[seg].(map[string]any)
	if !ok || nested == nil {
		nested = make(map[string]any)
		m[seg] = nested
	}
	Set(nested, rest, value)
}

func splitPath(path string) []string {
	return strings.Split(path, ".")
}

// child returns the value stored under seg in container.
func child(container any, seg string) (any, bool) {
	switch c := container.(type) {
	case map[string]any:
		v, ok := c[seg]
		return v, ok
	case []any:
		i, ok := index(seg, len(c))
		if !ok {
			return nil, false
		}
		return c[i], true
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(seg).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Slice, reflect.Array:
		i, ok := index(seg, rv.Len())
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true
	}
	return nil, false
}

func index(seg string, length int) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= length {
		return 0, false
	}
	return i, true
}
