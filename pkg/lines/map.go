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

package lines

import (
	"context"
	"runtime/debug"
)

// Map starts a single worker applying f to every value of in, in order.
//
// Streaming contract:
//
//   - Map never closes in and closes the returned channel exactly once.
//   - The worker stops when ctx is done, when in is closed, or when f panics.
//   - The output is unbuffered: a slow consumer slows the whole pipeline.
//     A consumer that stops early must cancel ctx so upstream goroutines can
//     exit.
//
// A panic raised by f is recovered and stored in the PanicStore carried by
// ctx (one is attached when ctx has none), then the output is closed. Check
// the store after draining the output to surface the fault.
func Map[T1 any, T2 any](ctx context.Context, in <-chan T1, f func(v T1) T2) <-chan T2 {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, ps := ensurePanicStore(ctx)
	ctx, cancel := context.WithCancel(ctx)

	out := make(chan T2)
	go func() {
		defer close(out)
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				ps.Store(r, debug.Stack())
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case v, ok := <-in:
				if !ok {
					return
				}
				res := f(v)
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}

// Collect drains ch until it is closed or ctx is done.
func Collect[T any](ctx context.Context, ch <-chan T) ([]T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	items := make([]T, 0, 8)
	for {
		select {
		case <-ctx.Done():
			return items, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return items, nil
			}
			items = append(items, v)
		}
	}
}
