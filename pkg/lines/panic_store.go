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
	"fmt"
	"slices"
	"sync"
)

// PanicInfo describes a panic recovered inside a stage goroutine.
type PanicInfo struct {
	Value any
	Stack []byte
}

func (p PanicInfo) Error() string {
	return fmt.Sprintf("lines: stage panicked: %v", p.Value)
}

// PanicStore records the first panic recovered by the stages of a pipeline.
//
// Stages run in goroutines and have no return path for errors, so a
// recovered panic is parked here and the pipeline supervisor checks the store
// once the output has been drained. Store is write-once; Load is safe to call
// concurrently with Store.
type PanicStore struct {
	mu   sync.Mutex
	info PanicInfo
	set  bool
}

// Store records value and a copy of stack. Only the first call wins.
// Store on a nil *PanicStore is a no-op.
func (ps *PanicStore) Store(value any, stack []byte) {
	if ps == nil {
		return
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if ps.set {
		return
	}
	ps.info = PanicInfo{Value: value, Stack: slices.Clone(stack)}
	ps.set = true
}

// Load returns a snapshot of the stored panic, if any.
func (ps *PanicStore) Load() (PanicInfo, bool) {
	if ps == nil {
		return PanicInfo{}, false
	}
	ps.mu.Lock()
	defer ps.mu.Unlock()
	if !ps.set {
		return PanicInfo{}, false
	}
	return PanicInfo{Value: ps.info.Value, Stack: slices.Clone(ps.info.Stack)}, true
}

// Err returns the stored panic as an error, or nil.
func (ps *PanicStore) Err() error {
	if info, ok := ps.Load(); ok {
		return info
	}
	return nil
}

type panicStoreKey struct{}

// WithPanicStore attaches a fresh PanicStore to parent (Background when nil).
func WithPanicStore(parent context.Context) (context.Context, *PanicStore) {
	if parent == nil {
		parent = context.Background()
	}
	ps := &PanicStore{}
	return context.WithValue(parent, panicStoreKey{}, ps), ps
}

// PanicStoreFromContext returns the store attached to ctx, or nil.
func PanicStoreFromContext(ctx context.Context) *PanicStore {
	if ctx == nil {
		return nil
	}
	ps, _ := ctx.Value(panicStoreKey{}).(*PanicStore)
	return ps
}

// ensurePanicStore returns ctx unchanged when it already carries a store,
// and a derived context with a new store otherwise.
func ensurePanicStore(ctx context.Context) (context.Context, *PanicStore) {
	if ps := PanicStoreFromContext(ctx); ps != nil {
		return ctx, ps
	}
	return WithPanicStore(ctx)
}
