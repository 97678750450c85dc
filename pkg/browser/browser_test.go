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

package browser

import (
	"context"
	"errors"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

type fakeMeasurer struct {
	vp    expand.Viewport
	boxes map[string]expand.Rect
}

func (f fakeMeasurer) Viewport(context.Context) (expand.Viewport, error) {
	return f.vp, nil
}

func (f fakeMeasurer) Measure(_ context.Context, selector string) (expand.Rect, expand.Margin, error) {
	r, ok := f.boxes[selector]
	if !ok {
		return expand.Rect{}, expand.Margin{}, ErrNoElement
	}
	return r, expand.Margin{Top: 10}, nil
}

func TestConfig_Defaults(t *testing.T) {
	var c Config
	assert.Equal(t, 1920, c.GetViewportWidth())
	assert.Equal(t, 1080, c.GetViewportHeight())
	assert.Equal(t, 30*time.Second, c.NavigationTimeout())

	c = Config{ViewportWidth: 800, ViewportHeight: 600, NavigationTimeoutMs: 1500}
	assert.Equal(t, 800, c.GetViewportWidth())
	assert.Equal(t, 600, c.GetViewportHeight())
	assert.Equal(t, 1500*time.Millisecond, c.NavigationTimeout())
}

func TestCheckSelectors(t *testing.T) {
	m := fakeMeasurer{
		vp: expand.Viewport{Width: 300, Height: 150},
		boxes: map[string]expand.Rect{
			"#one": {Top: 0, Height: 100, Width: 100},
			"#two": {Top: 100, Height: 100, Width: 100},
		},
	}
	reports, err := CheckSelectors(context.Background(), m, []string{"#two", "#one"})
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "#two", reports[0].Selector)
	assert.True(t, reports[0].Sides.Has(expand.SideBottom))
	assert.Equal(t, "#one", reports[1].Selector)
	// margin-top 10 above a box at top 0 bleeds on the top side only.
	assert.Equal(t, expand.SideTop, reports[1].Sides)
}

func TestCheckSelectors_MissingElement(t *testing.T) {
	m := fakeMeasurer{boxes: map[string]expand.Rect{}}
	_, err := CheckSelectors(context.Background(), m, []string{"#nope"})
	assert.True(t, errors.Is(err, ErrNoElement))
}

// TestPage_Live runs against a real Chrome. It is skipped unless
// EXPAND_BROWSER_TESTS=1.
func TestPage_Live(t *testing.T) {
	if os.Getenv("EXPAND_BROWSER_TESTS") != "1" {
		t.Skip("set EXPAND_BROWSER_TESTS=1 to run browser tests")
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cfg := DefaultConfig()
	cfg.ViewportWidth = 400
	cfg.ViewportHeight = 300
	s := NewSession(cfg)
	defer func() { _ = s.Close() }()

	html := `<html><body style="margin:0">` +
		`<div id="fits" style="position:absolute;top:0;height:100px;width:100px"></div>` +
		`<div id="bleeds" style="position:absolute;top:250px;height:100px;width:100px;margin-top:10px"></div>` +
		`</body></html>`
	page, err := s.Open(ctx, "data:text/html,"+url.PathEscape(html))
	require.NoError(t, err)
	defer func() { _ = page.Close() }()

	vp, err := page.Viewport(ctx)
	require.NoError(t, err)
	assert.Equal(t, expand.Viewport{Width: 400, Height: 300}, vp)

	reports, err := CheckSelectors(ctx, page, []string{"#fits", "#bleeds"})
	require.NoError(t, err)
	assert.False(t, reports[0].Sides.Has(expand.SideBottom))
	assert.True(t, reports[1].Sides.Has(expand.SideBottom))
}
