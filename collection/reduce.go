package collection

import "github.com/hasbyte1/go-lodash-utils/lang"

// Reduce folds the entries of c into a single value by calling
// combiner(acc, value, key, c) in traversal order.
//
// When initial is given, initial[0] seeds the accumulator. Otherwise the
// first value seeds it and combining starts at the second entry, and an
// empty collection yields lang.Undefined, which is distinct from both nil
// and zero. An absent collection yields initial[0] unchanged, or
// lang.Undefined.
//
//	sum, _ := collection.Reduce([]int{1, 2, 3, 4}, func(acc, n int) int { return acc + n }, 0) // 10
func Reduce(c any, combiner any, initial ...any) (any, error) {
	fn, err := toCallable(combiner)
	if err != nil {
		return nil, err
	}
	acc, seeded := lang.Undefined, len(initial) > 0
	if seeded {
		acc = initial[0]
	}
	classify(c).each(func(value, key any) bool {
		if !seeded {
			acc, seeded = value, true
			return true
		}
		acc = fn(acc, value, key, c)
		return true
	})
	return acc, nil
}
