// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package expand

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
)

// Kind tells which variant a Collection holds.
type Kind int

const (
	KindSequence Kind = iota // ordered values, keys are positions
	KindMapping              // key/value pairs in a fixed key order
)

func (k Kind) String() string {
	switch k {
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Collection is an ordered sequence or a key/value mapping, iterated
// uniformly by the collection helpers (FindLast, FindLastIndex).
//
// A mapping has no natural order in Go, so every constructor fixes one:
//
//   - Slice keeps the slice order and uses positions as keys.
//   - Map orders keys ascending.
//   - Entries uses the key order supplied by the caller.
//
// A Collection is a read-only view: it never copies the values of a slice,
// and it never mutates the underlying data.
type Collection[K comparable, V any] struct {
	kind   Kind
	keys   []K
	values []V
}

// Slice wraps s as a sequence. Keys are the element positions.
func Slice[V any](s []V) Collection[int, V] {
	keys := make([]int, len(s))
	for i := range keys {
		keys[i] = i
	}
	return Collection[int, V]{kind: KindSequence, keys: keys, values: s}
}

// Map wraps m as a mapping ordered by ascending key.
func Map[K cmp.Ordered, V any](m map[K]V) Collection[K, V] {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return Entries(keys, m)
}

// Entries wraps m as a mapping iterated in the order of keys.
// Keys absent from m are skipped.
func Entries[K comparable, V any](keys []K, m map[K]V) Collection[K, V] {
	c := Collection[K, V]{
		kind:   KindMapping,
		keys:   make([]K, 0, len(keys)),
		values: make([]V, 0, len(keys)),
	}
	for _, k := range keys {
		v, ok := m[k]
		if !ok {
			continue
		}
		c.keys = append(c.keys, k)
		c.values = append(c.values, v)
	}
	return c
}

func (c Collection[K, V]) Kind() Kind { return c.kind }

func (c Collection[K, V]) Len() int { return len(c.values) }

// At returns the key and value at position i in iteration order.
func (c Collection[K, V]) At(i int) (K, V) {
	return c.keys[i], c.values[i]
}

func (c Collection[K, V]) Keys() []K { return slices.Clone(c.keys) }

func (c Collection[K, V]) Values() []V { return slices.Clone(c.values) }

// CollectionOf coerces a dynamically typed value into a Collection.
//
// Slices and arrays become sequences keyed by position, maps become mappings
// ordered by key: numbers first, by value whatever their kind, then strings
// lexically, then other kinds by type and fmt representation. A non-nil
// pointer to one of those is followed.
//
// Anything else, including nil, is rejected with an *ArgumentError for
// position 1. This is the single place where the sequence-or-mapping choice
// is checked at run time.
func CollectionOf(v any) (Collection[any, any], error) {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			break
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		c := Collection[any, any]{
			kind:   KindSequence,
			keys:   make([]any, n),
			values: make([]any, n),
		}
		for i := 0; i < n; i++ {
			c.keys[i] = i
			c.values[i] = rv.Index(i).Interface()
		}
		return c, nil
	case reflect.Map:
		keys := rv.MapKeys()
		slices.SortFunc(keys, compareKeys)
		c := Collection[any, any]{
			kind:   KindMapping,
			keys:   make([]any, len(keys)),
			values: make([]any, len(keys)),
		}
		for i, k := range keys {
			c.keys[i] = k.Interface()
			c.values[i] = rv.MapIndex(k).Interface()
		}
		return c, nil
	default:
		return Collection[any, any]{}, AssertArgument(false, 1, "Array or Object")
	}
}

// compareKeys orders reflected map keys deterministically. Keys are ranked
// by class first (numbers, then strings, then everything else); numbers
// compare by value whatever their kind, strings lexically, and the rest by
// type name then fmt representation.
func compareKeys(a, b reflect.Value) int {
	a, b = unwrapKey(a), unwrapKey(b)
	if c := cmp.Compare(keyClass(a), keyClass(b)); c != 0 {
		return c
	}
	switch keyClass(a) {
	case classNumber:
		return compareNumbers(a, b)
	case classString:
		return cmp.Compare(a.String(), b.String())
	default:
		if c := cmp.Compare(a.Type().String(), b.Type().String()); c != 0 {
			return c
		}
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	}
}

const (
	classNumber = iota
	classString
	classOther
)

// unwrapKey follows the interface wrapping of keys of a map[any]V.
func unwrapKey(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v
}

func keyClass(v reflect.Value) int {
	switch {
	case isInt(v), isUint(v), isFloat(v):
		return classNumber
	case v.Kind() == reflect.String:
		return classString
	default:
		return classOther
	}
}

// compareNumbers compares two numeric values of any kinds by value.
// Integers are compared exactly; a float on either side makes it a float
// comparison.
func compareNumbers(a, b reflect.Value) int {
	switch {
	case isInt(a) && isInt(b):
		return cmp.Compare(a.Int(), b.Int())
	case isUint(a) && isUint(b):
		return cmp.Compare(a.Uint(), b.Uint())
	case isInt(a) && isUint(b):
		if a.Int() < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.Int()), b.Uint())
	case isUint(a) && isInt(b):
		return -compareNumbers(b, a)
	default:
		return cmp.Compare(toFloat(a), toFloat(b))
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isInt(v):
		return float64(v.Int())
	case isUint(v):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func isInt(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUint(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(v reflect.Value) bool {
	return v.Kind() == reflect.Float32 || v.Kind() == reflect.Float64
}
