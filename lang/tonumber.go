package lang

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	reBinary  = regexp.MustCompile(`^0[bB][01]+$`)
	reOctal   = regexp.MustCompile(`^0[oO][0-7]+$`)
	reHex     = regexp.MustCompile(`^0[xX][0-9a-fA-F]+$`)
	reDecimal = regexp.MustCompile(`^[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)$`)
)

// ToNumber converts v to a float64.
//
// Numbers of any Go kind are returned unchanged (±Inf and NaN included).
// nil converts to 0, [Undefined] to NaN and booleans to 1 or 0. Strings are
// trimmed and parsed as binary (0b), octal (0o), hexadecimal (0x) or
// decimal/exponential literals; an empty string is 0 and a sign in front of
// a radix prefix makes the literal invalid. Other values are unwrapped
// through [Valuer] and then fmt.Stringer; slices and arrays without either
// hook are joined with commas first. Everything else, including funcs and
// channels, is NaN.
func ToNumber(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int:
		return float64(x)
	case string:
		return parseNumber(x)
	}
	if !isPrimitive(v) {
		v = toPrimitive(v)
	}
	return primitiveToNumber(v)
}

// toPrimitive unwraps a non-primitive value one level. The result is either
// a primitive or the value itself when it offers no way to unwrap.
func toPrimitive(v any) any {
	if isNilPointer(v) {
		return nil
	}
	other := v
	if valuer, ok := v.(Valuer); ok {
		other = valuer.ValueOf()
		if isPrimitive(other) {
			return other
		}
		if isNilPointer(other) {
			return nil
		}
	}
	if s, ok := other.(fmt.Stringer); ok {
		return s.String()
	}
	switch reflect.TypeOf(other).Kind() {
	case reflect.Slice, reflect.Array:
		return ToString(other)
	}
	return other
}

func primitiveToNumber(v any) float64 {
	if v == nil {
		return 0
	}
	if v == Undefined {
		return math.NaN()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	case reflect.Bool:
		if rv.Bool() {
			return 1
		}
		return 0
	case reflect.String:
		return parseNumber(rv.String())
	}
	return math.NaN()
}

func parseNumber(s string) float64 {
	s = strings.TrimFunc(s, isWhitespace)
	switch {
	case s == "":
		return 0
	case reBinary.MatchString(s):
		return parseRadix(s[2:], 2)
	case reOctal.MatchString(s):
		return parseRadix(s[2:], 8)
	case reHex.MatchString(s):
		return parseRadix(s[2:], 16)
	case reDecimal.MatchString(s):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}

// parseRadix parses digits of any length, rounding to the nearest float64.
func parseRadix(digits string, base int) float64 {
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// isWhitespace matches the characters stripped around numeric strings:
// Unicode white space and the byte order mark, but not NEL (U+0085).
func isWhitespace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}
