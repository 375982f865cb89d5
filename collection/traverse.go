package collection

import (
	"cmp"
	"iter"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-lodash-utils/lang"
)

// maxLength is the largest "length" accepted on an array-like map (2^53-1).
const maxLength = 1<<53 - 1

// ArrayLike is implemented by values that are iterated by index without
// being Go slices. Index reports false for a gap, which is visited with
// lang.Undefined as its value.
type ArrayLike interface {
	Len() int
	Index(i int) (any, bool)
}

type strategy uint8

const (
	absent strategy = iota
	indexed
	keyed
)

// view is the result of classifying a collection: a strategy plus
// positional accessors for keys and values.
type view struct {
	strategy strategy
	n        int
	key      func(i int) any
	value    func(i int) any
}

// each calls fn for every entry in order until fn returns false.
func (v view) each(fn func(value, key any) bool) {
	for i := 0; i < v.n; i++ {
		if !fn(v.value(i), v.key(i)) {
			return
		}
	}
}

func indexedView(n int, value func(i int) any) view {
	return view{
		strategy: indexed,
		n:        n,
		key:      func(i int) any { return i },
		value:    value,
	}
}

func keyedView(keys []any, value func(i int) any) view {
	return view{
		strategy: keyed,
		n:        len(keys),
		key:      func(i int) any { return keys[i] },
		value:    value,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Classification
// ─────────────────────────────────────────────────────────────────────────────

func classify(c any) view {
	if lang.IsNil(c) {
		return view{}
	}
	if rv := reflect.ValueOf(c); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return view{}
	}
	switch x := c.(type) {
	case ArrayLike:
		return indexedView(x.Len(), func(i int) any {
			if v, ok := x.Index(i); ok {
				return v
			}
			return lang.Undefined
		})
	case string:
		runes := []rune(x)
		return indexedView(len(runes), func(i int) any { return string(runes[i]) })
	case *orderedmap.OrderedMap[string, any]:
		return orderedMapView(x)
	case map[string]any:
		return stringMapView(x)
	case *yaml.Node:
		return yamlView(x)
	}
	return reflectView(reflect.ValueOf(c))
}

// arrayLength reports the "length" entry of an array-like map: a number
// that is a whole value in [0, 2^53-1].
func arrayLength(get func(key string) (any, bool)) (int, bool) {
	v, ok := get("length")
	if !ok || !lang.IsNumber(v) {
		return 0, false
	}
	f := lang.ToNumber(v)
	if f < 0 || f > maxLength || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

func arrayLikeView(n int, get func(key string) (any, bool)) view {
	return indexedView(n, func(i int) any {
		if v, ok := get(strconv.Itoa(i)); ok {
			return v
		}
		return lang.Undefined
	})
}

func orderedMapView(m *orderedmap.OrderedMap[string, any]) view {
	if n, ok := arrayLength(m.Get); ok {
		return arrayLikeView(n, m.Get)
	}
	keys := make([]any, 0, m.Len())
	values := make([]any, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
		values = append(values, pair.Value)
	}
	return keyedView(keys, func(i int) any { return values[i] })
}

func stringMapView(m map[string]any) view {
	get := func(key string) (any, bool) {
		v, ok := m[key]
		return v, ok
	}
	if n, ok := arrayLength(get); ok {
		return arrayLikeView(n, get)
	}
	sorted := slices.Sorted(maps.Keys(m))
	keys := make([]any, len(sorted))
	for i, k := range sorted {
		keys[i] = k
	}
	return keyedView(keys, func(i int) any { return m[sorted[i]] })
}

// yamlView walks sequence and mapping nodes in document order. Scalar
// children are decoded to Go values; sequence and mapping children are
// returned as *yaml.Node so their order is kept when they are walked in
// turn.
func yamlView(n *yaml.Node) view {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return view{}
		}
		return yamlView(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return view{}
		}
		return yamlView(n.Alias)
	case yaml.SequenceNode:
		return indexedView(len(n.Content), func(i int) any { return nodeValue(n.Content[i]) })
	case yaml.MappingNode:
		keys := make([]any, len(n.Content)/2)
		for i := range keys {
			keys[i] = nodeValue(n.Content[2*i])
		}
		return keyedView(keys, func(i int) any { return nodeValue(n.Content[2*i+1]) })
	}
	return view{}
}

func nodeValue(n *yaml.Node) any {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	if n.Kind != yaml.ScalarNode {
		return n
	}
	var v any
	if err := n.Decode(&v); err != nil {
		return n.Value
	}
	return v
}

func reflectView(rv reflect.Value) view {
	switch rv.Kind() {
	case reflect.Pointer:
		switch rv.Elem().Kind() {
		case reflect.Struct, reflect.Slice, reflect.Array, reflect.Map:
			return classify(rv.Elem().Interface())
		}
	case reflect.Slice, reflect.Array:
		return indexedView(rv.Len(), func(i int) any { return rv.Index(i).Interface() })
	case reflect.String:
		runes := []rune(rv.String())
		return indexedView(len(runes), func(i int) any { return string(runes[i]) })
	case reflect.Map:
		// Entries are read with MapRange; a NaN key cannot be looked up again.
		var entries [][2]reflect.Value
		for it := rv.MapRange(); it.Next(); {
			entries = append(entries, [2]reflect.Value{it.Key(), it.Value()})
		}
		slices.SortFunc(entries, func(a, b [2]reflect.Value) int { return compareKeys(a[0], b[0]) })
		keys := make([]any, len(entries))
		for i, e := range entries {
			keys[i] = e[0].Interface()
		}
		return keyedView(keys, func(i int) any { return entries[i][1].Interface() })
	case reflect.Struct:
		return structView(rv)
	}
	return view{}
}

func structView(rv reflect.Value) view {
	t := rv.Type()
	var keys []any
	var fields []int
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).IsExported() {
			keys = append(keys, t.Field(i).Name)
			fields = append(fields, i)
		}
	}
	return keyedView(keys, func(i int) any { return rv.Field(fields[i]).Interface() })
}

// compareKeys orders Go map keys: numbers first in numeric order, then
// everything else by its string form.
func compareKeys(a, b reflect.Value) int {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	an, aok := numericKey(a)
	bn, bok := numericKey(b)
	switch {
	case aok && bok:
		return cmp.Compare(an, bn)
	case aok:
		return -1
	case bok:
		return 1
	}
	return strings.Compare(keyString(a), keyString(b))
}

func numericKey(v reflect.Value) (float64, bool) {
	if !v.IsValid() || !v.CanInterface() || !lang.IsNumber(v.Interface()) {
		return 0, false
	}
	return lang.ToNumber(v.Interface()), true
}

func keyString(v reflect.Value) string {
	if !v.IsValid() {
		return ""
	}
	return lang.ToString(v.Interface())
}

// ─────────────────────────────────────────────────────────────────────────────
// Traversal
// ─────────────────────────────────────────────────────────────────────────────

// Entries returns an iterator over the (key, value) pairs of c in traversal
// order. Keys are int indices for indexed collections and the mapping key
// otherwise. c is classified again each time the iterator is ranged over.
//
//	for key, value := range collection.Entries(m) {
//	    ...
//	}
func Entries(c any) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		classify(c).each(func(value, key any) bool { return yield(key, value) })
	}
}

// ForEach calls iteratee(value, key, c) for every entry of c in traversal
// order. Iteration stops early when iteratee returns false (of any bool
// type); other falsy results do not stop it.
func ForEach(c any, iteratee any) error {
	fn, err := toCallable(iteratee)
	if err != nil {
		return err
	}
	classify(c).each(func(value, key any) bool {
		return !isFalse(fn(value, key, c))
	})
	return nil
}

func isFalse(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Bool && !rv.Bool()
}
