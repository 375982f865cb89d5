package collection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-lodash-utils/collection"
	"github.com/hasbyte1/go-lodash-utils/lang"
)

type entry struct {
	Key   any
	Value any
}

func entries(c any) []entry {
	var out []entry
	for k, v := range collection.Entries(c) {
		out = append(out, entry{k, v})
	}
	return out
}

func TestEntriesSlice(t *testing.T) {
	assert.Equal(t, []entry{{0, "a"}, {1, "b"}}, entries([]string{"a", "b"}))
	assert.Equal(t, []entry{{0, 1}, {1, 2}}, entries([2]int{1, 2}))
}

func TestEntriesAbsent(t *testing.T) {
	for _, c := range []any{nil, lang.Undefined, 42, true, 3.5, (*user)(nil), func() {}} {
		assert.Empty(t, entries(c), "%T", c)
	}
}

func TestEntriesStringRunes(t *testing.T) {
	type word string
	want := []entry{{0, "h"}, {1, "é"}, {2, "!"}}
	assert.Equal(t, want, entries("hé!"))
	assert.Equal(t, want, entries(word("hé!")))
}

func TestEntriesOrderedMapKeepsInsertionOrder(t *testing.T) {
	om := ordered(t, "zeta", 1, "alpha", 2, "mid", 3)
	assert.Equal(t, []entry{{"zeta", 1}, {"alpha", 2}, {"mid", 3}}, entries(om))
}

func TestEntriesGoMapsSortKeys(t *testing.T) {
	assert.Equal(t,
		[]entry{{"a", 1}, {"b", 2}, {"c", 3}},
		entries(map[string]any{"b": 2, "c": 3, "a": 1}))
	assert.Equal(t,
		[]entry{{1, "x"}, {2, "y"}, {10, "z"}},
		entries(map[int]string{10: "z", 2: "y", 1: "x"}))
	assert.Equal(t,
		[]entry{{2, "n"}, {"a", "s"}, {"b", "t"}},
		entries(map[any]string{"b": "t", 2: "n", "a": "s"}))
}

func TestEntriesMapWithNaNKey(t *testing.T) {
	got, err := collection.Filter(map[float64]int{math.NaN(): 1, 2: 2}, func(any) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	seen := entries(map[float64]string{math.NaN(): "a", math.NaN(): "b"})
	require.Len(t, seen, 2)
	assert.True(t, math.IsNaN(seen[0].Key.(float64)))
	assert.ElementsMatch(t, []any{"a", "b"}, []any{seen[0].Value, seen[1].Value})
}

func TestEntriesPointerToCollection(t *testing.T) {
	assert.Equal(t, []entry{{0, "a"}, {1, "b"}}, entries(&[]string{"a", "b"}))
	assert.Equal(t, []entry{{0, 1}, {1, 2}}, entries(&[2]int{1, 2}))
	assert.Equal(t, []entry{{"a", 1}, {"b", 2}}, entries(&map[string]int{"b": 2, "a": 1}))
	assert.Equal(t,
		[]entry{{0, "x"}, {1, lang.Undefined}},
		entries(&map[string]any{"length": 2, "0": "x"}))
	assert.Empty(t, entries((*[]int)(nil)))
	assert.Empty(t, entries((*map[string]int)(nil)))
}

func TestEntriesStructFields(t *testing.T) {
	type row struct {
		Name   string
		hidden int
		Age    int
	}
	want := []entry{{"Name", "ann"}, {"Age", 30}}
	assert.Equal(t, want, entries(row{Name: "ann", hidden: 1, Age: 30}))
	assert.Equal(t, want, entries(&row{Name: "ann", hidden: 1, Age: 30}))
}

func TestEntriesArrayLike(t *testing.T) {
	gaps := sparse{n: 3, items: map[int]any{1: "b"}}
	assert.Equal(t, []entry{{0, lang.Undefined}, {1, "b"}, {2, lang.Undefined}}, entries(gaps))

	arrayLike := ordered(t, "length", 2, "1", "b")
	assert.Equal(t, []entry{{0, lang.Undefined}, {1, "b"}}, entries(arrayLike))
}

func TestEntriesInvalidLengthIsKeyed(t *testing.T) {
	for _, length := range []any{-1, 1.5, "2", float64(1 << 54)} {
		m := map[string]any{"length": length, "a": 1}
		assert.Equal(t, []entry{{"a", 1}, {"length", length}}, entries(m), "%v", length)
	}
}

func TestEntriesYAML(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("zeta: 1\nalpha: two\nnested: [3, 4]\nnothing: null\n"), &doc))

	got := entries(&doc)
	require.Len(t, got, 4)
	assert.Equal(t, entry{"zeta", 1}, got[0])
	assert.Equal(t, entry{"alpha", "two"}, got[1])
	assert.Equal(t, entry{"nothing", nil}, got[3])

	nested, ok := got[2].Value.(*yaml.Node)
	require.True(t, ok, "composite children stay nodes")
	assert.Equal(t, []entry{{0, 3}, {1, 4}}, entries(nested))
}

func TestEntriesYAMLAlias(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("base: &b [1, 2]\ncopy: *b\n"), &doc))
	copied := entries(&doc)[1].Value
	assert.Equal(t, []entry{{0, 1}, {1, 2}}, entries(copied))
}

func TestEntriesBreak(t *testing.T) {
	var seen []any
	for k := range collection.Entries([]int{1, 2, 3, 4}) {
		if k == 2 {
			break
		}
		seen = append(seen, k)
	}
	assert.Equal(t, []any{0, 1}, seen)
}

func TestForEach(t *testing.T) {
	var keys []any
	err := collection.ForEach(ordered(t, "a", 1, "b", 2), func(_ any, key string) {
		keys = append(keys, key)
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, keys)
}

func TestForEachStopsOnFalse(t *testing.T) {
	var seen []int
	err := collection.ForEach([]int{1, 2, 3, 4}, func(n int) bool {
		seen = append(seen, n)
		return n < 2
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestForEachStopsOnNamedBoolFalse(t *testing.T) {
	type keepGoing bool
	var seen []int
	err := collection.ForEach([]int{1, 2, 3, 4}, func(n int) keepGoing {
		seen = append(seen, n)
		return keepGoing(n < 2)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, seen)
}

func TestForEachOnlyStopsOnBooleanFalse(t *testing.T) {
	count := 0
	err := collection.ForEach([]int{1, 2, 3}, func() any {
		count++
		return 0
	})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestForEachRejectsNonCallable(t *testing.T) {
	assert.ErrorIs(t, collection.ForEach([]int{1}, struct{}{}), collection.ErrNotCallable)
}
