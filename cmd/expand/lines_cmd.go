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
	"context"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/benoit-pereira-da-silva/expand/pkg/carrier"
	"github.com/benoit-pereira-da-silva/expand/pkg/lines"
)

func newCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean [file]",
		Short: "Trim every line and merge runs of spaces",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runClean,
	}
}

func runClean(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	ctx, ps := lines.WithPanicStore(commandContext(cmd))
	r, err := newLineReader(ctx, lines.CleanStage[carrier.Line](), in)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	count := 0
	for l := range r.Start() {
		if err := writeLine(out, l); err != nil {
			r.Stop()
			return err
		}
		count++
	}
	if err := ps.Err(); err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	logger.Debug("clean done", zap.Int("lines", count))
	return nil
}

func newFindLastCmd() *cobra.Command {
	var (
		pattern string
		clean   bool
	)
	cmd := &cobra.Command{
		Use:   "find-last [file]",
		Short: "Print the last line matching a regular expression",
		Long: `Print the last line matching --match. Lines are cleaned first unless
--clean=false. Exits with status 1 when no line matches.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return fmt.Errorf("invalid --match: %w", err)
			}
			return runFindLast(cmd, args, re, clean)
		},
	}
	cmd.Flags().StringVarP(&pattern, "match", "m", "", "regular expression a line must match")
	cmd.Flags().BoolVar(&clean, "clean", true, "clean lines before matching")
	_ = cmd.MarkFlagRequired("match")
	return cmd
}

func runFindLast(cmd *cobra.Command, args []string, re *regexp.Regexp, clean bool) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeIn()

	ctx, ps := lines.WithPanicStore(commandContext(cmd))
	var stage lines.Stage[carrier.Line]
	if clean {
		stage = lines.CleanStage[carrier.Line]()
	}
	r, err := newLineReader(ctx, stage, in)
	if err != nil {
		return err
	}

	l, ok, err := lines.LastMatch(ctx, r.Start(), func(_ context.Context, l carrier.Line) bool {
		return re.MatchString(l.Text())
	})
	if err != nil {
		return err
	}
	if err := ps.Err(); err != nil {
		return err
	}
	if err := r.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if !ok {
		logger.Debug("no line matched", zap.String("match", re.String()))
		return errNoMatch
	}
	logger.Debug("last match", zap.Int("index", l.Index))
	_, err = fmt.Fprintln(cmd.OutOrStdout(), l.Text())
	return err
}

func newLineReader(ctx context.Context, stage lines.Stage[carrier.Line], in io.Reader) (*lines.Reader[carrier.Line], error) {
	split, err := cfg.SplitFunc()
	if err != nil {
		return nil, err
	}
	r := lines.NewReader[carrier.Line](stage, in)
	r.SetContext(ctx)
	r.SetSplitFunc(split)
	return r, nil
}

// writeLine writes l, adding a newline when the split mode dropped it.
func writeLine(w io.Writer, l carrier.Line) error {
	if l.EOL() == "" {
		_, err := fmt.Fprintln(w, l.Value)
		return err
	}
	_, err := io.WriteString(w, l.Value)
	return err
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() {
		if cerr := f.Close(); cerr != nil {
			logger.Warn("failed to close input", zap.String("path", args[0]), zap.Error(cerr))
		}
	}, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
