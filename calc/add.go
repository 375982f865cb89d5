// Package calc provides arithmetic helpers that coerce their operands the
// way JavaScript's + operator does.
package calc

import (
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// Add adds two values.
//
// When both operands are lang.Undefined the result is 0; when only one is,
// the other is returned unchanged. If either operand is a string both are
// converted with lang.ToString and concatenated. Otherwise both are
// converted with lang.ToNumber and summed, so nil counts as 0 and booleans
// as 1 or 0.
//
//	calc.Add(6, 4)     // → 10.0
//	calc.Add("6", 4)   // → "64"
//	calc.Add(true, 4)  // → 5.0
func Add(augend, addend any) any {
	switch {
	case augend == lang.Undefined && addend == lang.Undefined:
		return 0.0
	case addend == lang.Undefined:
		return augend
	case augend == lang.Undefined:
		return addend
	case isString(augend) || isString(addend):
		return lang.ToString(augend) + lang.ToString(addend)
	}
	return lang.ToNumber(augend) + lang.ToNumber(addend)
}

func isString(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.String
}
