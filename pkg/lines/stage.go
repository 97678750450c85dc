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

	"github.com/benoit-pereira-da-silva/expand/pkg/carrier"
)

// Stage is one step of a lines pipeline.
//
// Implementations are expected to:
//
//   - read zero or more items from in and emit zero or more items on the
//     returned channel,
//   - watch ctx.Done() on every receive and every send,
//   - close the returned channel when done or canceled,
//   - never close in (the upstream stage owns it).
//
// The returned channel must not be nil.
type Stage[S carrier.Carrier[S]] interface {
	Apply(ctx context.Context, in <-chan S) <-chan S
}

// StageFunc adapts a plain function to Stage.
//
//	upper := StageFunc[carrier.Line](func(ctx context.Context, in <-chan carrier.Line) <-chan carrier.Line {
//		return Map(ctx, in, func(l carrier.Line) carrier.Line {
//			l.Value = strings.ToUpper(l.Value)
//			return l
//		})
//	})
type StageFunc[S carrier.Carrier[S]] func(ctx context.Context, in <-chan S) <-chan S

// Apply calls f. A panic in f, or a nil output channel, is recorded in the
// PanicStore carried by ctx and replaced by a closed channel.
func (f StageFunc[S]) Apply(ctx context.Context, in <-chan S) (out <-chan S) {
	ctx, ps := ensurePanicStore(ctx)

	defer func() {
		if r := recover(); r != nil {
			ps.Store(r, debug.Stack())
			out = closedChan[S]()
		}
	}()

	out = f(ctx, in)
	if out == nil {
		ps.Store("lines: StageFunc returned a nil channel", debug.Stack())
		out = closedChan[S]()
	}
	return out
}

// Chain runs stages one after the other. Nil stages are skipped and an
// empty chain forwards its input unchanged.
type Chain[S carrier.Carrier[S]] struct {
	stages []Stage[S]
}

func NewChain[S carrier.Carrier[S]](stages ...Stage[S]) *Chain[S] {
	return &Chain[S]{stages: stages}
}

// Apply wires every stage to the output of the previous one, sharing ctx.
func (c *Chain[S]) Apply(ctx context.Context, in <-chan S) <-chan S {
	out := in
	for _, s := range c.stages {
		if s == nil {
			continue
		}
		out = s.Apply(ctx, out)
	}
	return out
}

func closedChan[T any]() <-chan T {
	ch := make(chan T)
	close(ch)
	return ch
}
