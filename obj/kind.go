package obj

import "reflect"

// Kind classifies a dynamic value into the closed set of categories the
// helpers in this package understand.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindSequence
	KindRecord
	KindCallable
	KindOther
)

var kindNames = [...]string{
	KindNull:     "null",
	KindBool:     "bool",
	KindNumber:   "number",
	KindString:   "string",
	KindSequence: "sequence",
	KindRecord:   "record",
	KindCallable: "callable",
	KindOther:    "other",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "other"
}

// Primitive is satisfied by the scalar kinds: booleans, strings and numbers.
type Primitive interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// KindOf reports the Kind of v.
//
// The common dynamic shapes (map[string]any, []any and the JSON scalars) are
// classified without reflection.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case bool:
		return KindBool
	case string:
		return KindString
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return KindNumber
	case []any:
		return KindSequence
	case map[string]any:
		return KindRecord
	}
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) Kind {
	switch rv.Kind() {
	case reflect.Invalid:
		return KindNull
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return KindOther
	case reflect.Bool:
		return KindBool
	case reflect.String:
		return KindString
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return KindNumber
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			return KindRecord
		}
		return KindOther
	case reflect.Func:
		return KindCallable
	}
	return KindOther
}

// IsRecord reports whether v is a structured record: a non-nil value whose
// kind is KindRecord. Sequences are never records, and neither are nil maps,
// although [KindOf] still classifies them as KindRecord.
func IsRecord(v any) bool {
	if m, ok := v.(map[string]any); ok {
		return m != nil
	}
	return KindOf(v) == KindRecord && !reflect.ValueOf(v).IsNil()
}
