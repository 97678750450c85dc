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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"only spaces", "     ", ""},
		{"trim", "  abc  ", "abc"},
		{"collapse", "  a  b  c  ", "a b c"},
		{"single spaces kept", "a b c", "a b c"},
		{"tabs kept inside", "a\t\tb", "a\t\tb"},
		{"newline kept inside", "a \n  b", "a \n b"},
		{"outer whitespace trimmed", "\n\t a   b \t\n", "a b"},
		{"utf8", "  héllo    wörld  ", "héllo wörld"},
		{"byte order mark trimmed", "\uFEFFabc\uFEFF", "abc"},
		{"byte order mark before spaces", "\uFEFF  a  b", "a b"},
		{"nbsp trimmed", "\u00A0abc\u3000", "abc"},
		{"next line kept", "\u0085abc\u0085", "\u0085abc\u0085"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clean(tc.in); got != tc.want {
				t.Fatalf("Clean(%q): got %q want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestClean_Properties(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a",
		"  a  b   c    d ",
		"x \t  y\n\n  z",
		"   leading",
		"trailing    ",
		"mixed     nbsp",
	}
	for _, in := range inputs {
		once := Clean(in)
		assert.Equal(t, once, Clean(once), "Clean must be idempotent for %q", in)
		assert.NotContains(t, once, "  ", "Clean left consecutive spaces for %q", in)
		assert.Equal(t, strings.TrimFunc(once, isTrimSpace), once, "Clean left outer whitespace for %q", in)
	}
}

func TestCleanValue(t *testing.T) {
	s := "  a   b "
	var nilPtr *string

	got, err := CleanValue(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = CleanValue(nilPtr)
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = CleanValue(s)
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	got, err = CleanValue(&s)
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	_, err = CleanValue(42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	var argErr *ArgumentError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 1, argErr.Position)
	assert.Equal(t, "string", argErr.Expected)
	assert.Equal(t, "expand: invalid argument #1, expected string", err.Error())
}
