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
	"bufio"
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/benoit-pereira-da-silva/expand/pkg/carrier"
)

// Reader scans an io.Reader into tokens and feeds them to a Stage.
//
// Each token becomes prototype.FromUTF8String(token).WithIndex(i), where
// prototype is the zero value of S and i the token sequence number.
//
//	r := NewReader[carrier.Line](NewChain(CleanStage[carrier.Line]()), os.Stdin)
//	r.SetContext(ctx)
//	for l := range r.Start() {
//		fmt.Print(l.Value)
//	}
//	if err := r.Err(); err != nil { ... }
//
// The default split function is ScanLines, which keeps end-of-line markers.
// SetContext and SetSplitFunc must be called before Start.
type Reader[S carrier.Carrier[S]] struct {
	reader    io.Reader
	splitFunc bufio.SplitFunc
	stage     Stage[S]

	ctx    context.Context
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

func NewReader[S carrier.Carrier[S]](stage Stage[S], reader io.Reader) *Reader[S] {
	return &Reader[S]{
		reader:    reader,
		splitFunc: ScanLines,
		stage:     stage,
	}
}

// SetContext sets the parent context. Stop cancels a child of it.
func (r *Reader[S]) SetContext(ctx context.Context) {
	if ctx == nil {
		ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(ctx)
}

func (r *Reader[S]) SetSplitFunc(splitFunc bufio.SplitFunc) {
	r.splitFunc = splitFunc
}

// Start launches the scanning goroutine and returns the stage output.
// A nil stage forwards the scanned tokens unchanged.
func (r *Reader[S]) Start() <-chan S {
	switch {
	case r.ctx == nil:
		r.ctx, r.cancel = context.WithCancel(context.Background())
	case r.cancel == nil:
		r.ctx, r.cancel = context.WithCancel(r.ctx)
	}

	scanner := bufio.NewScanner(r.reader)
	if r.splitFunc != nil {
		scanner.Split(r.splitFunc)
	}

	in := make(chan S)
	var out <-chan S = in
	if r.stage != nil {
		out = r.stage.Apply(r.ctx, in)
	}

	go func() {
		defer close(in)
		prototype := *new(S)
		for i := 0; ; i++ {
			select {
			case <-r.ctx.Done():
				return
			default:
			}
			if !scanner.Scan() {
				r.setErr(scanner.Err())
				return
			}
			item := prototype.FromUTF8String(scanner.Text()).WithIndex(i)
			select {
			case <-r.ctx.Done():
				return
			case in <- item:
			}
		}
	}()
	return out
}

// Stop cancels the scanning context. It is a no-op before Start.
func (r *Reader[S]) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
}

// Err returns the scanner error, if any, once the output has been drained.
func (r *Reader[S]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Reader[S]) setErr(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

// ScanLines is a bufio.SplitFunc returning each line with its trailing
// end-of-line marker. Unlike bufio.ScanLines it drops nothing, so
// concatenating the tokens restores the input.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	// Nothing buffered and the input is exhausted.
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	// A complete line: the token keeps its '\n' (and any '\r' before it).
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	// Last line without a terminator.
	if atEOF {
		return len(data), data, nil
	}
	// Ask the scanner for more data.
	return 0, nil, nil
}
