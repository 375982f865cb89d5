package collection

import (
	"reflect"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// CountBy groups the values of c by the key keyFn returns for each value and
// counts the members of each group. keyFn receives only the value. Keys are
// converted to strings the way object property names are: nil becomes
// "null", lang.Undefined "undefined", numbers their shortest form and
// booleans "true"/"false".
//
//	collection.CountBy([]float64{4.3, 6.1, 6.4}, math.Floor) // → map["4":1 "6":2]
//
// An absent or non-collection c yields an empty, non-nil map.
func CountBy(c any, keyFn any) (map[string]int, error) {
	fn, err := toCallable(keyFn)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	classify(c).each(func(value, _ any) bool {
		counts[propertyKey(fn(value))]++
		return true
	})
	return counts, nil
}

func propertyKey(k any) string {
	switch k {
	case nil:
		return "null"
	case lang.Undefined:
		return "undefined"
	}
	if rv := reflect.ValueOf(k); rv.CanFloat() && rv.Float() == 0 {
		return "0"
	}
	return lang.ToString(k)
}
