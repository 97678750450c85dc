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

// Predicate is invoked with the value, its key (position for a sequence)
// and the collection being searched.
type Predicate[K comparable, V any] func(value V, key K, c Collection[K, V]) bool

// FindLast returns the last element of c for which pred returns true.
//
//	v, ok, _ := FindLast(Slice([]int{1, 2, 3, 4}), func(n, _ int, _ Collection[int, int]) bool {
//		return n%2 != 0
//	})
//	// v == 3, ok == true
//
// The scan runs from the end toward the start and stops at the first match,
// so pred is called at most once per element and never for elements before
// the match.
//
// When nothing matches, FindLast returns the zero value and false: an empty
// search is a normal outcome, not an error. The only error is an
// *ArgumentError for position 2 when pred is nil.
func FindLast[K comparable, V any](c Collection[K, V], pred Predicate[K, V]) (V, bool, error) {
	var zero V
	i, err := FindLastIndex(c, pred)
	if err != nil || i < 0 {
		return zero, false, err
	}
	return c.values[i], true, nil
}

// FindLastIndex is FindLast returning the iteration position of the match,
// or -1 when no element matches.
func FindLastIndex[K comparable, V any](c Collection[K, V], pred Predicate[K, V]) (int, error) {
	if err := AssertArgument(pred != nil, 2, "Function"); err != nil {
		return -1, err
	}
	for i := len(c.values) - 1; i >= 0; i-- {
		if pred(c.values[i], c.keys[i], c) {
			return i, nil
		}
	}
	return -1, nil
}

// FindLastIn is the plain slice form of FindLast. A nil pred never matches.
func FindLastIn[V any](s []V, pred func(value V, index int) bool) (V, bool) {
	var zero V
	if pred == nil {
		return zero, false
	}
	for i := len(s) - 1; i >= 0; i-- {
		if pred(s[i], i) {
			return s[i], true
		}
	}
	return zero, false
}
