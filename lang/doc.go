// Package lang provides loosely-typed value helpers modelled on lodash's
// "Lang" functions: numeric and string coercion, truthiness and emptiness
// checks over arbitrary Go values.
//
// # Null versus undefined
//
// Go has a single nil, but the coercion rules distinguish a present-but-null
// value from a missing one. This package uses nil for null and the
// [Undefined] sentinel for a missing value:
//
//	lang.ToNumber(nil)            // → 0
//	lang.ToNumber(lang.Undefined) // → NaN
//
// [Undefined] is also the "absent" result returned by helpers elsewhere in
// this module (for example collection.Reduce on an empty collection with no
// initial accumulator). Compare against it directly or use [IsNil] to treat
// nil and Undefined alike.
//
// # Numeric coercion
//
// [ToNumber] never fails. Anything that cannot be represented yields NaN,
// which callers check with math.IsNaN:
//
//	lang.ToNumber("  42  ") // → 42
//	lang.ToNumber("0x1f")   // → 31
//	lang.ToNumber("-0x1f")  // → NaN (signed radix literals are invalid)
//	lang.ToNumber("")       // → 0
//
// Values that are not numbers, strings or booleans may take part in
// coercion by implementing [Valuer] and/or fmt.Stringer.
package lang
