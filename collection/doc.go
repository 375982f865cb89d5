// Package collection provides loosely-typed collection helpers modelled on
// lodash's "Collection" functions: [Every], [Filter], [CountBy], [Reduce] and
// [ForEach].
//
// # Collections
//
// Every helper accepts its collection as an any and classifies it once per
// call into one of three shapes:
//
//   - absent: nil, lang.Undefined, nil pointers and values that are not
//     collections (numbers, booleans, funcs...). Nothing is visited.
//   - indexed: slices, arrays, strings (one rune at a time), [ArrayLike]
//     values, and map[string]any or ordered maps carrying a numeric
//     "length" entry. Values are visited at indices 0..length-1; a gap is
//     visited with lang.Undefined as its value.
//   - keyed: ordered maps (insertion order), YAML mapping nodes (document
//     order), Go maps (ascending key order) and structs (exported fields in
//     declaration order).
//
// A non-nil pointer to a struct, slice, array or map is classified by the
// value it points to; the pointer itself is still what callbacks receive as
// the collection.
//
// # Callables
//
// Predicates, key selectors and combiners are accepted as any Go func and
// are called positionally with (value, key, collection); combiners receive
// the accumulator first. A func may declare fewer parameters than it is
// offered, and its parameters may be concrete types:
//
//	counts, _ := collection.CountBy([]float64{4.3, 6.1, 6.4}, math.Floor)
//	// → map["4":1 "6":2]
//
//	adults, _ := collection.Filter(users, func(u User) bool { return u.Age >= 18 })
//
// Predicate results are judged with lang.IsTruthy. Passing anything other
// than a non-nil func returns an error wrapping [ErrNotCallable] before the
// collection is touched.
package collection
