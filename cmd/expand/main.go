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

// Command expand exposes the expand helpers on the command line.
//
// Usage:
//
//	expand clean [file]
//	expand find-last --match REGEX [file]
//	expand bleed --top 100 --height 100 --margin-top 10 --viewport-height 150
//	expand bleed-page URL --selector "#menu" --selector ".footer"
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/expand/internal/config"
)

// errNoMatch makes find-last exit with status 1 without printing an error.
var errNoMatch = errors.New("no match")

var (
	configPath string
	verbose    bool

	logger = zap.NewNop()
	cfg    = config.Default()

	// newLogger builds the logger installed before every command runs.
	newLogger = buildLogger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "expand",
		Short:         "Whitespace cleaning, last-match search and viewport bleed checks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l
			loaded, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = loaded
			logger.Debug("configuration loaded",
				zap.String("path", configPath),
				zap.Float64("viewport_width", cfg.Viewport.Width),
				zap.Float64("viewport_height", cfg.Viewport.Height),
				zap.String("split", cfg.Split))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newCleanCmd(), newFindLastCmd(), newBleedCmd(), newBleedPageCmd())
	return root
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func main() {
	err := newRootCmd().Execute()
	_ = logger.Sync()
	switch {
	case err == nil:
	case errors.Is(err, errNoMatch):
		os.Exit(1)
	default:
		fmt.Fprintln(os.Stderr, "expand:", err)
		os.Exit(2)
	}
}
