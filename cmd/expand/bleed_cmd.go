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

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/expand/pkg/browser"
	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

func newBleedCmd() *cobra.Command {
	var (
		rect   expand.Rect
		margin expand.Margin
		vp     expand.Viewport
	)
	cmd := &cobra.Command{
		Use:   "bleed",
		Short: "Report which viewport sides a box overflows",
		Long: `Report which viewport sides the box described by the flags overflows.
The viewport defaults to the configured one; --viewport-width and
--viewport-height override it. Prints "none" when the box fits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("viewport-width") {
				vp.Width = cfg.Viewport.Width
			}
			if !cmd.Flags().Changed("viewport-height") {
				vp.Height = cfg.Viewport.Height
			}
			sides, err := expand.Bleeds(vp, &rect, &margin)
			if err != nil {
				return err
			}
			logger.Debug("bleed check",
				zap.Any("rect", rect),
				zap.Any("margin", margin),
				zap.Any("viewport", vp),
				zap.Stringer("sides", sides))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), sides)
			return err
		},
	}
	f := cmd.Flags()
	f.Float64Var(&rect.Top, "top", 0, "bounding box top")
	f.Float64Var(&rect.Left, "left", 0, "bounding box left")
	f.Float64Var(&rect.Width, "width", 0, "bounding box width")
	f.Float64Var(&rect.Height, "height", 0, "bounding box height")
	f.Float64Var(&margin.Top, "margin-top", 0, "top margin")
	f.Float64Var(&margin.Right, "margin-right", 0, "right margin")
	f.Float64Var(&margin.Bottom, "margin-bottom", 0, "bottom margin")
	f.Float64Var(&margin.Left, "margin-left", 0, "left margin")
	f.Float64Var(&vp.Width, "viewport-width", 0, "viewport width (default from config)")
	f.Float64Var(&vp.Height, "viewport-height", 0, "viewport height (default from config)")
	return cmd
}

func newBleedPageCmd() *cobra.Command {
	var selectors []string
	cmd := &cobra.Command{
		Use:   "bleed-page URL",
		Short: "Check elements of a live page against its viewport",
		Long: `Open URL in a browser (configured under "browser" in the config file),
measure every --selector and print one "selector<TAB>sides" line each.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)
			session := browser.NewSession(cfg.Browser)
			defer func() {
				if err := session.Close(); err != nil {
					logger.Warn("failed to close browser", zap.Error(err))
				}
			}()

			page, err := session.Open(ctx, args[0])
			if err != nil {
				return err
			}
			reports, err := browser.CheckSelectors(ctx, page, selectors)
			if err != nil {
				return err
			}
			return writeReports(cmd.OutOrStdout(), reports)
		},
	}
	cmd.Flags().StringArrayVarP(&selectors, "selector", "s", nil, "CSS selector to check (repeatable)")
	_ = cmd.MarkFlagRequired("selector")
	return cmd
}

// writeReports prints one "selector<TAB>sides" line per report, in order.
func writeReports(w io.Writer, reports []browser.Report) error {
	for _, r := range reports {
		logger.Debug("measured", zap.String("selector", r.Selector), zap.Any("rect", r.Rect), zap.Any("margin", r.Margin))
		if _, err := fmt.Fprintf(w, "%s\t%s\n", r.Selector, r.Sides); err != nil {
			return err
		}
	}
	return nil
}
