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

package carrier

// UTF8String is a readability alias: every piece of text inside a pipeline
// is UTF-8.
type UTF8String = string

// Carrier is the contract of the values flowing through a lines pipeline.
//
//   - UTF8String renders the current text.
//   - FromUTF8String builds a new carrier from a token. It is called on the
//     zero value of S, so it must not rely on receiver state.
//   - WithIndex / GetIndex attach and read the token sequence number set by
//     lines.Reader. Stages that build new carriers must preserve it.
//   - WithError / GetError attach and read a non-fatal, per-item error.
//     Errors are data: stages keep forwarding error-carrying items and the
//     consumer decides what to do with them.
//
// Implementations should be small values, cheap to copy.
type Carrier[S any] interface {
	UTF8String() UTF8String
	FromUTF8String(s UTF8String) S
	WithIndex(index int) S
	GetIndex() int
	WithError(err error) S
	GetError() error
}
