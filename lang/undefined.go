package lang

import "reflect"

type undefined struct{}

func (undefined) String() string   { return "undefined" }
func (undefined) GoString() string { return "lang.Undefined" }

// Undefined marks a missing value. It is distinct from nil (null), from
// zero and from every other domain value, and is comparable with ==.
var Undefined any = undefined{}

// Valuer is implemented by values that unwrap to a primitive for coercion.
// ToNumber prefers ValueOf over String when a value implements both.
type Valuer interface {
	ValueOf() any
}

// IsNil reports whether v is nil or [Undefined].
func IsNil(v any) bool {
	return v == nil || v == Undefined
}

// isPrimitive reports whether v is nil, Undefined, a boolean, a number or a
// string (including named types of those kinds).
func isPrimitive(v any) bool {
	if IsNil(v) {
		return true
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool, reflect.String:
		return true
	}
	return isNumberKind(reflect.TypeOf(v).Kind())
}

func isNumberKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// IsNumber reports whether v holds a Go integer or floating-point kind.
func IsNumber(v any) bool {
	return v != nil && isNumberKind(reflect.TypeOf(v).Kind())
}

// isNilPointer reports whether v is a typed nil pointer or interface.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
