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

import (
	"errors"
	"strings"
)

// Line is the minimal Carrier: one scanned token of text, its sequence
// number in the source and an optional per-item error.
type Line struct {
	Value string
	Index int
	Error error
}

// LineFrom builds a Line with index 0.
func LineFrom(from UTF8String) Line {
	return (*new(Line)).FromUTF8String(from)
}

func (l Line) UTF8String() UTF8String {
	return l.Value
}

func (l Line) FromUTF8String(str UTF8String) Line {
	return Line{Value: str}
}

func (l Line) WithIndex(idx int) Line {
	l.Index = idx
	return l
}

func (l Line) GetIndex() int {
	return l.Index
}

// WithError attaches err, joining it with any error already carried.
// A nil err leaves the line unchanged.
func (l Line) WithError(err error) Line {
	if err == nil {
		return l
	}
	if l.Error == nil {
		l.Error = err
	} else {
		l.Error = errors.Join(l.Error, err)
	}
	return l
}

func (l Line) GetError() error {
	return l.Error
}

// Text returns the value without its end-of-line marker ("\n" or "\r\n").
func (l Line) Text() string {
	if !strings.HasSuffix(l.Value, "\n") {
		return l.Value
	}
	return strings.TrimSuffix(l.Value[:len(l.Value)-1], "\r")
}

// EOL returns the end-of-line marker carried by the value, if any.
func (l Line) EOL() string {
	return l.Value[len(l.Text()):]
}
