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
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

// Measurer reads element geometry from a rendered document.
type Measurer interface {
	expand.ViewportSource
	Measure(ctx context.Context, selector string) (expand.Rect, expand.Margin, error)
}

var _ Measurer = (*Page)(nil)

// Report is the bleed check result for one selector.
type Report struct {
	Selector string
	Rect     expand.Rect
	Margin   expand.Margin
	Sides    expand.Sides
}

// CheckSelectors reads the viewport once, then measures every selector
// concurrently and runs expand.Bleeds on each. Reports follow the order of
// selectors. The first measurement error cancels the remaining ones.
func CheckSelectors(ctx context.Context, m Measurer, selectors []string) ([]Report, error) {
	vp, err := m.Viewport(ctx)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, len(selectors))
	g, gctx := errgroup.WithContext(ctx)
	for i, sel := range selectors {
		g.Go(func() error {
			rect, margin, err := m.Measure(gctx, sel)
			if err != nil {
				return err
			}
			sides, err := expand.Bleeds(vp, &rect, &margin)
			if err != nil {
				return fmt.Errorf("check %q: %w", sel, err)
			}
			reports[i] = Report{Selector: sel, Rect: rect, Margin: margin, Sides: sides}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
