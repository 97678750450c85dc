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
	"bytes"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benoit-pereira-da-silva/expand/internal/config"
	"github.com/benoit-pereira-da-silva/expand/pkg/browser"
	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWithLogger(t, zap.NewNop(), stdin, args...)
}

// runWithLogger executes the root command with l installed in place of the
// logger built from --verbose.
func runWithLogger(t *testing.T, l *zap.Logger, stdin string, args ...string) (string, error) {
	t.Helper()
	previous := newLogger
	newLogger = func(bool) (*zap.Logger, error) { return l, nil }
	t.Cleanup(func() { newLogger = previous })

	logger = zap.NewNop()
	cfg = config.Default()
	configPath = ""
	verbose = false

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestClean_Stdin(t *testing.T) {
	out, err := run(t, "  a  b  \n\tc   d\t\n   \nlast  ", "clean")
	require.NoError(t, err)
	assert.Equal(t, "a b\nc d\n\nlast\n", out)
}

func TestClean_FileWithConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("  x   y \n z \n"), 0o600))
	conf := filepath.Join(dir, "expand.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("split: lines\n"), 0o600))

	out, err := run(t, "", "--config", conf, "clean", in)
	require.NoError(t, err)
	assert.Equal(t, "x y\nz\n", out)
}

func TestClean_MissingFile(t *testing.T) {
	_, err := run(t, "", "clean", filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorContains(t, err, "open input")
}

func TestFindLast(t *testing.T) {
	input := "GET /a  200\nGET /b   500\nGET /c 200\nGET  /d  500\nGET /e 200\n"
	out, err := run(t, input, "find-last", "--match", `\b500$`)
	require.NoError(t, err)
	assert.Equal(t, "GET /d 500\n", out)
}

func TestFindLast_NoMatch(t *testing.T) {
	out, err := run(t, "a\nb\n", "find-last", "-m", "zzz")
	assert.True(t, errors.Is(err, errNoMatch))
	assert.Empty(t, out)
}

func TestFindLast_InvalidPattern(t *testing.T) {
	_, err := run(t, "a\n", "find-last", "-m", "(")
	assert.ErrorContains(t, err, "invalid --match")
}

func TestFindLast_RawLines(t *testing.T) {
	out, err := run(t, "a  b\nc\n", "find-last", "-m", "a  b", "--clean=false")
	require.NoError(t, err)
	assert.Equal(t, "a  b\n", out)
}

func TestBleed(t *testing.T) {
	out, err := run(t, "", "bleed", "--top", "0", "--height", "100", "--viewport-height", "150")
	require.NoError(t, err)
	assert.Equal(t, "none\n", out)

	out, err = run(t, "", "bleed", "--top", "100", "--height", "100", "--margin-top", "10", "--viewport-height", "150")
	require.NoError(t, err)
	assert.Equal(t, "bottom\n", out)
}

func TestBleed_ConfigViewport(t *testing.T) {
	conf := filepath.Join(t.TempDir(), "expand.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("viewport:\n  width: 100\n  height: 100\n"), 0o600))

	out, err := run(t, "", "--config", conf, "bleed", "--left", "50", "--width", "60", "--height", "10")
	require.NoError(t, err)
	assert.Equal(t, "right\n", out)
}

func TestBleed_LogsCheck(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	out, err := runWithLogger(t, zap.New(core), "", "-v", "bleed", "--top", "100", "--height", "100", "--viewport-height", "150")
	require.NoError(t, err)
	assert.Equal(t, "bottom\n", out)

	checks := logs.FilterMessage("bleed check").All()
	require.Len(t, checks, 1)
	assert.Equal(t, "bottom", checks[0].ContextMap()["sides"])
	assert.Equal(t, 1, logs.FilterMessage("configuration loaded").Len())
}

func TestBuildLogger(t *testing.T) {
	quiet, err := buildLogger(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zapcore.WarnLevel))

	loud, err := buildLogger(true)
	require.NoError(t, err)
	assert.True(t, loud.Core().Enabled(zapcore.DebugLevel))
}

func TestWriteReports(t *testing.T) {
	var out bytes.Buffer
	err := writeReports(&out, []browser.Report{
		{Selector: "#menu", Sides: expand.SideNone},
		{Selector: ".footer", Sides: expand.SideBottom | expand.SideRight},
	})
	require.NoError(t, err)
	assert.Equal(t, "#menu\tnone\n.footer\tright|bottom\n", out.String())
}

func TestBleedPage_RequiresSelector(t *testing.T) {
	_, err := run(t, "", "bleed-page", "about:blank")
	assert.ErrorContains(t, err, "selector")
}

// TestBleedPage_Live drives a real Chrome. It is skipped unless
// EXPAND_BROWSER_TESTS=1.
func TestBleedPage_Live(t *testing.T) {
	if os.Getenv("EXPAND_BROWSER_TESTS") != "1" {
		t.Skip("set EXPAND_BROWSER_TESTS=1 to run browser tests")
	}
	conf := filepath.Join(t.TempDir(), "expand.yaml")
	require.NoError(t, os.WriteFile(conf, []byte("browser:\n  headless: true\n  viewport_width: 400\n  viewport_height: 300\n  navigation_timeout_ms: 30000\n"), 0o600))

	html := `<html><body style="margin:0">` +
		`<div id="fits" style="position:absolute;top:0;height:100px;width:100px"></div>` +
		`<div id="bleeds" style="position:absolute;top:250px;height:100px;width:100px;margin-top:10px"></div>` +
		`</body></html>`
	out, err := run(t, "", "--config", conf, "bleed-page", "data:text/html,"+url.PathEscape(html),
		"-s", "#fits", "-s", "#bleeds")
	require.NoError(t, err)
	assert.Equal(t, "#fits\tnone\n#bleeds\tbottom\n", out)
}
