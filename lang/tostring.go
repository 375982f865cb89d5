package lang

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

// ToString converts v to a string.
//
// nil and [Undefined] become "". Numbers use the shortest representation
// that round-trips, switching to exponent form outside [1e-6, 1e21) and
// keeping the sign of negative zero ("-0"). Slices and arrays are joined
// with "," with nil elements rendered as "". Values implementing
// fmt.Stringer or error use those; anything else is formatted with
// fmt.Sprint.
func ToString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return numberString(x)
	case int:
		return strconv.Itoa(x)
	case bool:
		return strconv.FormatBool(x)
	}
	if v == Undefined {
		return ""
	}
	switch x := v.(type) {
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return x.String()
	case error:
		if isNilPointer(v) {
			return ""
		}
		return x.Error()
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String()
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return numberString(rv.Float())
	case reflect.Pointer:
		if rv.IsNil() {
			return ""
		}
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = ToString(rv.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v)
}

func numberString(f float64) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return FormatNumber(f)
}

// FormatNumber renders f the way numbers display in JavaScript: "NaN",
// "Infinity", "-Infinity", plain decimals in [1e-6, 1e21) and exponent form
// ("1e+21", "1.5e-7") outside it. Negative zero renders as "0".
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
		return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
