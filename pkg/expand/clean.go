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
	"strings"
	"unicode"
)

// Clean returns s trimmed, with every run of consecutive space characters
// merged into a single one.
//
//	Clean("  abc  ")     // "abc"
//	Clean("  a  b  c  ") // "a b c"
//
// Only U+0020 runs are collapsed. Tabs, newlines and other whitespace inside
// the text are left untouched; they are only removed at both ends, using the
// ECMAScript notion of white space (see isTrimSpace).
func Clean(s string) string {
	s = strings.TrimFunc(s, isTrimSpace)
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	space := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == ' ' {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteByte(c)
	}
	return b.String()
}

// isTrimSpace reports whether r is white space or a line terminator for
// String.prototype.trim: the byte order mark U+FEFF counts, NEL U+0085 does
// not.
func isTrimSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

// CleanValue is Clean for values whose type is only known at run time
// (decoded YAML, JSON, template data...).
//
// nil and nil *string are treated as absent and yield "". A string or a
// non-nil *string is cleaned. Any other value is rejected with an
// *ArgumentError for position 1.
func CleanValue(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return Clean(s), nil
	case *string:
		if s == nil {
			return "", nil
		}
		return Clean(*s), nil
	default:
		return "", AssertArgument(false, 1, "string")
	}
}
