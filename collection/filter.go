package collection

import "github.com/hasbyte1/go-lodash-utils/lang"

// Filter returns, in traversal order, the values of c for which predicate
// returns a truthy result. The result is a new, non-nil slice; c is never
// modified. An absent collection yields an empty slice.
func Filter(c any, predicate any) ([]any, error) {
	fn, err := toCallable(predicate)
	if err != nil {
		return nil, err
	}
	out := []any{}
	classify(c).each(func(value, key any) bool {
		if lang.IsTruthy(fn(value, key, c)) {
			out = append(out, value)
		}
		return true
	})
	return out, nil
}
