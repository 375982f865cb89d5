package collection

import "errors"

// ErrNotCallable is returned when a predicate, key selector or combiner is
// not a non-nil func.
var ErrNotCallable = errors.New("collection: iteratee is not a function")
