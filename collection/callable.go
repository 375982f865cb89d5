package collection

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

var undefinedType = reflect.TypeOf(lang.Undefined)

// callable is a caller-supplied func normalised to a positional signature.
type callable func(args ...any) any

// toCallable validates fn and adapts it to a callable. Common signatures are
// called directly; any other func is called through reflection.
func toCallable(fn any) (callable, error) {
	rv := reflect.ValueOf(fn)
	if rv.Kind() != reflect.Func || rv.IsNil() {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, fn)
	}
	switch f := fn.(type) {
	case func(any) any:
		return func(args ...any) any { return f(arg(args, 0)) }, nil
	case func(any) bool:
		return func(args ...any) any { return f(arg(args, 0)) }, nil
	case func(any, any) any:
		return func(args ...any) any { return f(arg(args, 0), arg(args, 1)) }, nil
	case func(any, any, any) any:
		return func(args ...any) any { return f(arg(args, 0), arg(args, 1), arg(args, 2)) }, nil
	case func(any, any, any) bool:
		return func(args ...any) any { return f(arg(args, 0), arg(args, 1), arg(args, 2)) }, nil
	case func(any, any, any, any) any:
		return func(args ...any) any { return f(arg(args, 0), arg(args, 1), arg(args, 2), arg(args, 3)) }, nil
	}
	return reflectCallable(rv), nil
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return lang.Undefined
}

func reflectCallable(fn reflect.Value) callable {
	t := fn.Type()
	fixed := t.NumIn()
	if t.IsVariadic() {
		fixed--
	}
	return func(args ...any) any {
		in := make([]reflect.Value, fixed, max(fixed, len(args)))
		for i := range fixed {
			in[i] = argValue(args, i, t.In(i))
		}
		if t.IsVariadic() {
			elem := t.In(fixed).Elem()
			for i := fixed; i < len(args); i++ {
				in = append(in, argValue(args, i, elem))
			}
		}
		out := fn.Call(in)
		if len(out) == 0 {
			return lang.Undefined
		}
		return out[0].Interface()
	}
}

// argValue converts args[i] for a parameter of type t. Missing arguments
// are lang.Undefined where t can hold it, nil arguments become the zero
// value, numbers convert between kinds, and anything else that does not fit
// is replaced by the zero value.
func argValue(args []any, i int, t reflect.Type) reflect.Value {
	if i >= len(args) {
		if undefinedType.AssignableTo(t) {
			return reflect.ValueOf(lang.Undefined)
		}
		return reflect.Zero(t)
	}
	if args[i] == nil {
		return reflect.Zero(t)
	}
	v := reflect.ValueOf(args[i])
	switch {
	case v.Type().AssignableTo(t):
		return v
	case lang.IsNumber(args[i]) && isNumberType(t):
		return v.Convert(t)
	}
	return reflect.Zero(t)
}

func isNumberType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
