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
	"log/slog"
	"strings"

	"github.com/benoit-pereira-da-silva/expand/pkg/carrier"
	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

// Predicate decides whether an item is accepted.
type Predicate[S carrier.Carrier[S]] func(ctx context.Context, item S) bool

// HasError accepts items carrying a per-item error.
func HasError[S carrier.Carrier[S]](_ context.Context, item S) bool {
	return item.GetError() != nil
}

// CleanStage applies expand.Clean to every item. A trailing "\n" or "\r\n"
// is kept so that the output of a ScanLines reader stays line-oriented.
func CleanStage[S carrier.Carrier[S]]() StageFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		return Map(ctx, in, func(item S) S {
			s := item.UTF8String()
			body, eol := splitEOL(s)
			cleaned := expand.Clean(body) + eol
			if cleaned == s {
				return item
			}
			return item.FromUTF8String(cleaned).
				WithIndex(item.GetIndex()).
				WithError(item.GetError())
		})
	}
}

// Filter forwards the items accepted by pred and drops the others.
// A nil pred drops everything.
func Filter[S carrier.Carrier[S]](pred Predicate[S]) StageFunc[S] {
	return func(ctx context.Context, in <-chan S) <-chan S {
		out := make(chan S)
		go func() {
			defer close(out)
			for {
				select {
				case <-ctx.Done():
					return
				case item, ok := <-in:
					if !ok {
						return
					}
					if pred == nil || !pred(ctx, item) {
						continue
					}
					select {
					case <-ctx.Done():
						return
					case out <- item:
					}
				}
			}
		}()
		return out
	}
}

// Log forwards every item unchanged and logs it with its index. Items
// carrying an error are logged at error level. A nil logger falls back to
// slog.Default().
func Log[S carrier.Carrier[S]](logger *slog.Logger, label string) StageFunc[S] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, in <-chan S) <-chan S {
		return Map(ctx, in, func(item S) S {
			if err := item.GetError(); err != nil {
				logger.ErrorContext(ctx, label, "err", err, "index", item.GetIndex(), "string", item.UTF8String())
			} else {
				logger.InfoContext(ctx, label, "index", item.GetIndex(), "string", item.UTF8String())
			}
			return item
		})
	}
}

// LastMatch drains in and returns the last item accepted by pred, using
// expand.FindLast over the buffered items: pred is evaluated from the end
// of the stream backwards and stops at the first acceptance.
//
// ok is false when nothing matched. A nil pred yields an
// *expand.ArgumentError. When ctx is done before in is closed, ctx.Err() is
// returned.
func LastMatch[S carrier.Carrier[S]](ctx context.Context, in <-chan S, pred Predicate[S]) (S, bool, error) {
	var zero S
	if err := expand.AssertArgument(pred != nil, 2, "Function"); err != nil {
		return zero, false, err
	}
	items, err := Collect(ctx, in)
	if err != nil {
		return zero, false, err
	}
	return expand.FindLast(expand.Slice(items), func(item S, _ int, _ expand.Collection[int, S]) bool {
		return pred(ctx, item)
	})
}

func splitEOL(s string) (body, eol string) {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2], "\r\n"
	case strings.HasSuffix(s, "\n"):
		return s[:len(s)-1], "\n"
	default:
		return s, ""
	}
}
