package obj

import (
	"math"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Selection
// ─────────────────────────────────────────────────────────────────────────────

// Pick returns a new map containing only the listed keys that are present in
// m. Values are copied by reference; keys missing from m are ignored.
//
//	Pick(map[string]any{"a": 1, "b": 2, "c": 3}, "a", "c") // → {"a": 1, "c": 3}
func Pick[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	out := make(map[K]V, len(keys))
	for _, k := range keys {
		if v, ok := m[k]; ok {
			out[k] = v
		}
	}
	return out
}

// Omit returns a shallow copy of m without the listed keys. m is not modified.
func Omit[K comparable, V any](m map[K]V, keys ...K) map[K]V {
	drop := make(map[K]struct{}, len(keys))
	for _, k := range keys {
		drop[k] = struct{}{}
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		if _, skip := drop[k]; !skip {
			out[k] = v
		}
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Merge & clone
// ─────────────────────────────────────────────────────────────────────────────

// Merge recursively merges each source into target, left to right, and
// returns target. target is modified in place; a nil target is replaced by a
// new map.
//
// Record values are merged key by key into the matching value on target:
//   - a record (typed records are widened to map[string]any) receives the
//     source keys;
//   - an absent or falsy value (nil, false, zero, NaN, "") is replaced by a
//     new record first;
//   - any other value (a non-zero scalar, a sequence, a function) is left
//     untouched and the source record is skipped.
//
// Every non-record source value, sequences included, overwrites the target's
// value outright.
//
//	Merge(map[string]any{"a": 1}, map[string]any{"b": 2}, map[string]any{"a": 3})
//	// → {"a": 3, "b": 2}
func Merge(target map[string]any, sources ...map[string]any) map[string]any {
	if target == nil {
		target = make(map[string]any)
	}
	for _, src := range sources {
		mergeRecord(target, src)
	}
	return target
}

func mergeRecord(dst, src map[string]any) {
	for k, v := range src {
		nested, ok := toRecord(v)
		if !ok {
			dst[k] = v
			continue
		}
		into, ok := toRecord(dst[k])
		if !ok && !falsy(dst[k]) {
			continue
		}
		if into == nil {
			into = make(map[string]any, len(nested))
		}
		dst[k] = into
		mergeRecord(into, nested)
	}
}

// falsy reports whether v counts as "no value" for Merge.
func falsy(v any) bool {
	switch KindOf(v) {
	case KindNull:
		return true
	case KindBool:
		return !reflect.ValueOf(v).Bool()
	case KindString:
		return reflect.ValueOf(v).Len() == 0
	case KindNumber:
		f := toFloat(reflect.ValueOf(v))
		return f == 0 || math.IsNaN(f)
	}
	return false
}

// toRecord returns v as a map[string]any. Typed string-keyed maps are
// converted into a new map; map[string]any values are returned as-is.
func toRecord(v any) (map[string]any, bool) {
	if m, ok := v.(map[string]any); ok {
		return m, true
	}
	if KindOf(v) != KindRecord {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

// CloneDeep returns a deep copy of v. Sequences are copied element by element
// and records key by key, recursively, so the copy shares no slice or map with
// v. Every other value (primitives, functions, structs, pointers) is returned
// as-is. Typed maps and slices keep their concrete type.
func CloneDeep(v any) any {
	switch val := v.(type) {
	case map[string]any:
		if val == nil {
			return val
		}
		out := make(map[string]any, len(val))
		for k, e := range val {
			out[k] = CloneDeep(e)
		}
		return out
	case []any:
		if val == nil {
			return val
		}
		out := make([]any, len(val))
		for i, e := range val {
			out[i] = CloneDeep(e)
		}
		return out
	}
	switch KindOf(v) {
	case KindRecord, KindSequence:
		return cloneValue(reflect.ValueOf(v)).Interface()
	}
	return v
}

// Clone is the typed form of [CloneDeep].
//
//	cfg := Clone(defaults) // map[string]any, no type assertion needed
func Clone[T any](v T) T {
	c := CloneDeep(v)
	if c == nil {
		var zero T
		return zero
	}
	return c.(T)
}

func cloneValue(rv reflect.Value) reflect.Value {
	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), cloneElem(iter.Value(), rv.Type().Elem()))
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return rv
		}
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElem(rv.Index(i), rv.Type().Elem()))
		}
		return out
	case reflect.Array:
		out := reflect.New(rv.Type()).Elem()
		for i := 0; i < rv.Len(); i++ {
			out.Index(i).Set(cloneElem(rv.Index(i), rv.Type().Elem()))
		}
		return out
	}
	return rv
}

func cloneElem(v reflect.Value, typ reflect.Type) reflect.Value {
	c := CloneDeep(v.Interface())
	if c == nil {
		return reflect.Zero(typ)
	}
	return reflect.ValueOf(c)
}

// ─────────────────────────────────────────────────────────────────────────────
// Testing values
// ─────────────────────────────────────────────────────────────────────────────

// IsEmpty reports whether v is null, or a string, sequence or record of
// length zero. Every other value is non-empty, including 0 and false.
func IsEmpty(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return val == ""
	case []any:
		return len(val) == 0
	case map[string]any:
		return len(val) == 0
	}
	switch KindOf(v) {
	case KindNull:
		return true
	case KindString, KindSequence, KindRecord:
		return reflect.ValueOf(v).Len() == 0
	}
	return false
}

// IsEqual performs a deep structural comparison between a and b.
//
// Values of different kinds are never equal. Numbers compare by value across
// Go numeric types, so int(1) equals float64(1). Sequences must have the same
// length and pairwise equal elements in order. Records must have the same key
// set and pairwise equal values; key order is irrelevant. Functions are equal
// when they share the same code pointer; Go offers no closure identity.
func IsEqual(a, b any) bool {
	ka := KindOf(a)
	if ka != KindOf(b) {
		return false
	}
	switch ka {
	case KindNull:
		return true
	case KindBool:
		return reflect.ValueOf(a).Bool() == reflect.ValueOf(b).Bool()
	case KindString:
		return reflect.ValueOf(a).String() == reflect.ValueOf(b).String()
	case KindNumber:
		return numbersEqual(reflect.ValueOf(a), reflect.ValueOf(b))
	case KindSequence:
		return sequencesEqual(a, b)
	case KindRecord:
		return recordsEqual(a, b)
	case KindCallable:
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	}
	return reflect.DeepEqual(a, b)
}

func sequencesEqual(a, b any) bool {
	if sa, ok := a.([]any); ok {
		if sb, ok := b.([]any); ok {
			if len(sa) != len(sb) {
				return false
			}
			for i := range sa {
				if !IsEqual(sa[i], sb[i]) {
					return false
				}
			}
			return true
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Len() != rb.Len() {
		return false
	}
	for i := 0; i < ra.Len(); i++ {
		if !IsEqual(ra.Index(i).Interface(), rb.Index(i).Interface()) {
			return false
		}
	}
	return true
}

func recordsEqual(a, b any) bool {
	if ma, ok := a.(map[string]any); ok {
		if mb, ok := b.(map[string]any); ok {
			if len(ma) != len(mb) {
				return false
			}
			for k, va := range ma {
				vb, ok := mb[k]
				if !ok || !IsEqual(va, vb) {
					return false
				}
			}
			return true
		}
	}
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Len() != rb.Len() {
		return false
	}
	keyType := rb.Type().Key()
	iter := ra.MapRange()
	for iter.Next() {
		vb := rb.MapIndex(reflect.ValueOf(iter.Key().String()).Convert(keyType))
		if !vb.IsValid() || !IsEqual(iter.Value().Interface(), vb.Interface()) {
			return false
		}
	}
	return true
}

func numbersEqual(a, b reflect.Value) bool {
	switch {
	case isFloat(a) || isFloat(b):
		return toFloat(a) == toFloat(b)
	case isSigned(a) && isSigned(b):
		return a.Int() == b.Int()
	case !isSigned(a) && !isSigned(b):
		return a.Uint() == b.Uint()
	case isSigned(a):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	default:
		return b.Int() >= 0 && uint64(b.Int()) == a.Uint()
	}
}

func isFloat(v reflect.Value) bool {
	k := v.Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

func isSigned(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isFloat(v):
		return v.Float()
	case isSigned(v):
		return float64(v.Int())
	}
	return float64(v.Uint())
}
