package collection_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type user struct {
	Name   string
	Active bool
}

var users = []user{
	{Name: "barney", Active: true},
	{Name: "betty", Active: true},
	{Name: "fred", Active: false},
}

// call records the arguments a callback was invoked with.
type call struct {
	args []any
}

// recorder is a spy callback that records every invocation and answers
// with result.
type recorder struct {
	calls  []call
	result func(args ...any) any
}

func (r *recorder) predicate(value, key, c any) any {
	r.calls = append(r.calls, call{args: []any{value, key, c}})
	if r.result == nil {
		return true
	}
	return r.result(value, key, c)
}

func (r *recorder) combiner(acc, value, key, c any) any {
	r.calls = append(r.calls, call{args: []any{acc, value, key, c}})
	return r.result(acc, value, key, c)
}

// sparse is an ArrayLike with gaps at every index missing from items.
type sparse struct {
	n     int
	items map[int]any
}

func (s sparse) Len() int { return s.n }

func (s sparse) Index(i int) (any, bool) {
	v, ok := s.items[i]
	return v, ok
}

func ordered(t *testing.T, pairs ...any) *orderedmap.OrderedMap[string, any] {
	t.Helper()
	require.Zero(t, len(pairs)%2, "ordered needs key/value pairs")
	om := orderedmap.New[string, any]()
	for i := 0; i < len(pairs); i += 2 {
		om.Set(pairs[i].(string), pairs[i+1])
	}
	return om
}

// sameSlice reports whether a and b share the same backing array.
func sameSlice(a, b any) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
