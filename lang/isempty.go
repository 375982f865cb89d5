package lang

import "reflect"

// IsEmpty reports whether v has no elements.
//
// Strings, slices, arrays, maps and channels are empty when their length is
// zero, and values with a Len() int method (ordered maps, buffers) when Len
// returns zero. A struct is empty when it has no exported fields. Pointers
// to structs, slices, arrays and maps are judged by what they point to.
// Scalars such as numbers, booleans and funcs have no elements and are
// always empty, as are nil and [Undefined].
func IsEmpty(v any) bool {
	if IsNil(v) {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return true
		}
		if l, ok := v.(interface{ Len() int }); ok {
			return l.Len() == 0
		}
		switch rv.Elem().Kind() {
		case reflect.Struct:
			return !hasExportedFields(rv.Elem().Type())
		case reflect.Slice, reflect.Array, reflect.Map:
			return rv.Elem().Len() == 0
		}
		return true
	}
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	}
	if l, ok := v.(interface{ Len() int }); ok {
		return l.Len() == 0
	}
	if rv.Kind() == reflect.Struct {
		return !hasExportedFields(rv.Type())
	}
	return true
}

func hasExportedFields(t reflect.Type) bool {
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			return true
		}
	}
	return false
}
