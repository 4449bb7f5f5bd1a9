package arr

import (
	"reflect"
	"slices"
	"unsafe"

	"github.com/hasbyte1/go-lodash-lite/obj"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slicing & Restructuring
// ─────────────────────────────────────────────────────────────────────────────

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements. Every group is a new
// slice, so writes to a chunk never reach items.
//
// There is no implicit default size: pass 1 to split items into singletons.
// A size of zero or less yields an empty result.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for c := range slices.Chunk(items, size) {
		chunks = append(chunks, slices.Clone(c))
	}
	return chunks
}

// Collapse is the typed counterpart of [Flatten]: it joins a slice of slices
// into one new slice, one level deep. The result never aliases items.
func Collapse[T any](items [][]T) []T {
	out := slices.Concat(items...)
	if out == nil {
		out = []T{}
	}
	return out
}

// Flatten flattens items exactly one level deep: elements that are sequences
// have their elements spliced into the result, everything else passes through.
//
//	Flatten([]any{[]any{1, []any{2}}, 3}) // → [1 [2] 3]
func Flatten(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = appendSequence(out, item, false)
	}
	return out
}

// FlattenDeep recursively flattens every nested sequence in items.
func FlattenDeep(items []any) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = appendSequence(out, item, true)
	}
	return out
}

func appendSequence(out []any, item any, deep bool) []any {
	if obj.KindOf(item) != obj.KindSequence {
		return append(out, item)
	}
	if s, ok := item.([]any); ok && !deep {
		return append(out, s...)
	}
	rv := reflect.ValueOf(item)
	for i := 0; i < rv.Len(); i++ {
		elem := rv.Index(i).Interface()
		if deep {
			out = appendSequence(out, elem, true)
		} else {
			out = append(out, elem)
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

// Uniq returns a new slice with duplicates removed, preserving the first
// occurrence of each value. Values are matched with ==, so a float NaN never
// matches another NaN and every NaN is kept. Use [UniqAny] for mixed values
// where maps, slices and functions must be matched by reference.
func Uniq[T comparable](items []T) []T {
	return dedupe(items, func(_ int, item T) T { return item })
}

// UniqBy is the keyed form of [Uniq]: two elements are duplicates when fn
// returns the same key for both, and the first one wins.
//
//	arr.UniqBy(users, func(u User) int { return u.ID })
func UniqBy[T any, K comparable](items []T, fn func(T) K) []T {
	return dedupe(items, func(_ int, item T) K { return fn(item) })
}

// UniqAny de-duplicates heterogeneous values. Comparable values are matched
// by value; maps, slices and functions are matched by reference, so two
// distinct maps with equal contents are both kept. Empty slices with no
// backing array and values that cannot be compared at all (structs holding
// slices, for instance) have no usable identity and are always kept.
func UniqAny(items []any) []any {
	return dedupe(items, identityKey)
}

func dedupe[T any, K comparable](items []T, key func(int, T) K) []T {
	seen := make(map[K]struct{}, len(items))
	out := make([]T, 0, len(items))
	for i, item := range items {
		k := key(i, item)
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, item)
		}
	}
	return out
}

type reference struct {
	typ reflect.Type
	ptr uintptr
	len int
}

type position int

func identityKey(i int, v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		return reference{typ: rv.Type(), ptr: rv.Pointer()}
	case reflect.Func:
		// rv.Pointer is the code pointer, shared by every closure built from
		// the same literal; the interface data word is the closure itself.
		return reference{typ: rv.Type(), ptr: uintptr((*eface)(unsafe.Pointer(&v)).data)}
	case reflect.Slice:
		// Zero-size backing arrays all live at one runtime address.
		if rv.Cap() == 0 || rv.Type().Elem().Size() == 0 {
			return position(i)
		}
		return reference{typ: rv.Type(), ptr: rv.Pointer(), len: rv.Len()}
	}
	if !rv.Comparable() {
		return position(i)
	}
	return v
}

// eface mirrors the runtime layout of an empty interface.
type eface struct {
	typ, data unsafe.Pointer
}

// ─────────────────────────────────────────────────────────────────────────────
// Grouping
// ─────────────────────────────────────────────────────────────────────────────

// GroupBy groups items by the comparable key K extracted by fn.
// Elements keep their input order inside each group, and [Groups.Keys] lists
// keys in the order they were first produced.
//
//	byRole := arr.GroupBy(users, func(u User) string { return u.Role })
//	admins, _ := byRole.Get("admin")
func GroupBy[T any, K comparable](items []T, fn func(T) K) *Groups[K, T] {
	g := newGroups[K, T]()
	for _, item := range items {
		g.add(fn(item), item)
	}
	return g
}
