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
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched (via errors.Is) by every
// *ArgumentError returned by this package.
var ErrInvalidArgument = errors.New("expand: invalid argument")

// ArgumentError reports a call-site contract violation.
//
// Position is the 1-based position of the offending parameter and Expected
// describes the accepted type ("string", "Function", "Array or Object", ...).
//
// An ArgumentError is always returned before any computation takes place: a
// function either fully succeeds or rejects its input without side effects.
// Callers should fix the call site rather than retry.
type ArgumentError struct {
	Position int
	Expected string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("expand: invalid argument #%d, expected %s", e.Position, e.Expected)
}

// Is makes errors.Is(err, ErrInvalidArgument) hold for any *ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// AssertArgument returns nil when ok is true, and an *ArgumentError naming
// position and expected otherwise.
func AssertArgument(ok bool, position int, expected string) error {
	if ok {
		return nil
	}
	return &ArgumentError{Position: position, Expected: expected}
}
