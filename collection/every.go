package collection

import "github.com/hasbyte1/go-lodash-utils/lang"

// Every reports whether predicate returns a truthy result for every entry
// of c. Iteration stops at the first falsy result. An absent or empty
// collection yields true.
//
//	ok, _ := collection.Every([]int{2, 4, 6}, func(n int) bool { return n%2 == 0 }) // true
func Every(c any, predicate any) (bool, error) {
	fn, err := toCallable(predicate)
	if err != nil {
		return false, err
	}
	result := true
	classify(c).each(func(value, key any) bool {
		result = lang.IsTruthy(fn(value, key, c))
		return result
	})
	return result, nil
}
