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
	"context"
	"math"
	"strings"
)

// Rect is the bounding box of an element, in CSS pixels relative to the
// viewport (the shape returned by getBoundingClientRect).
type Rect struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Margin holds the computed margins of an element.
type Margin struct {
	Top    float64 `json:"top" yaml:"top"`
	Right  float64 `json:"right" yaml:"right"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
	Left   float64 `json:"left" yaml:"left"`
}

// Viewport holds the visible area dimensions.
//
// The bleed checks never read ambient state: the viewport is always passed
// in, so a result is only as fresh as the Viewport value it was given.
type Viewport struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// ViewportSource supplies the current viewport dimensions.
type ViewportSource interface {
	Viewport(ctx context.Context) (Viewport, error)
}

// StaticViewport is a ViewportSource returning fixed dimensions.
type StaticViewport Viewport

func (s StaticViewport) Viewport(_ context.Context) (Viewport, error) {
	return Viewport(s), nil
}

func assertBox(boundings *Rect, margin *Margin) error {
	if err := AssertArgument(boundings != nil, 1, "Object"); err != nil {
		return err
	}
	return AssertArgument(margin != nil, 2, "Object")
}

// WillBleedBottom reports whether the element described by boundings and
// margin overflows the bottom edge of vp:
//
//	top + margin.top + height + margin.bottom > floor(vp.Height)
//
// A nil boundings or margin yields an *ArgumentError (position 1 or 2).
func WillBleedBottom(vp Viewport, boundings *Rect, margin *Margin) (bool, error) {
	if err := assertBox(boundings, margin); err != nil {
		return false, err
	}
	return boundings.Top+margin.Top+boundings.Height+margin.Bottom > math.Floor(vp.Height), nil
}

// WillBleedTop reports whether the element's top margin edge sits above the
// viewport.
func WillBleedTop(_ Viewport, boundings *Rect, margin *Margin) (bool, error) {
	if err := assertBox(boundings, margin); err != nil {
		return false, err
	}
	return boundings.Top-margin.Top < 0, nil
}

// WillBleedLeft reports whether the element's left margin edge sits left of
// the viewport.
func WillBleedLeft(_ Viewport, boundings *Rect, margin *Margin) (bool, error) {
	if err := assertBox(boundings, margin); err != nil {
		return false, err
	}
	return boundings.Left-margin.Left < 0, nil
}

// WillBleedRight is the horizontal counterpart of WillBleedBottom.
func WillBleedRight(vp Viewport, boundings *Rect, margin *Margin) (bool, error) {
	if err := assertBox(boundings, margin); err != nil {
		return false, err
	}
	return boundings.Left+margin.Left+boundings.Width+margin.Right > math.Floor(vp.Width), nil
}

// Sides is a set of viewport edges.
type Sides uint8

const (
	SideTop Sides = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SideNone Sides = 0
)

// Has reports whether every side in o is set in s.
func (s Sides) Has(o Sides) bool { return s&o == o }

// String renders the set as "top|right|bottom|left" (in that order) or "none".
func (s Sides) String() string {
	if s == SideNone {
		return "none"
	}
	names := make([]string, 0, 4)
	for _, side := range []struct {
		bit  Sides
		name string
	}{
		{SideTop, "top"},
		{SideRight, "right"},
		{SideBottom, "bottom"},
		{SideLeft, "left"},
	} {
		if s.Has(side.bit) {
			names = append(names, side.name)
		}
	}
	return strings.Join(names, "|")
}

// Bleeds runs the four edge checks and returns the overflowing sides.
func Bleeds(vp Viewport, boundings *Rect, margin *Margin) (Sides, error) {
	if err := assertBox(boundings, margin); err != nil {
		return SideNone, err
	}
	checks := []struct {
		bit   Sides
		check func(Viewport, *Rect, *Margin) (bool, error)
	}{
		{SideTop, WillBleedTop},
		{SideRight, WillBleedRight},
		{SideBottom, WillBleedBottom},
		{SideLeft, WillBleedLeft},
	}
	var sides Sides
	for _, c := range checks {
		// Arguments were validated above.
		if bleeds, _ := c.check(vp, boundings, margin); bleeds {
			sides |= c.bit
		}
	}
	return sides, nil
}
