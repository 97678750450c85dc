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

// Package config loads the YAML configuration of the expand CLI.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/benoit-pereira-da-silva/expand/pkg/browser"
	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
	"github.com/benoit-pereira-da-silva/expand/pkg/lines"
)

// Split modes accepted by Config.Split.
const (
	SplitLines        = "lines"          // bufio.ScanLines, end-of-line markers dropped
	SplitLinesKeepEOL = "lines-keep-eol" // lines.ScanLines, end-of-line markers kept
)

// Config is the on-disk configuration.
//
//	viewport:
//	  width: 1280
//	  height: 720
//	split: lines-keep-eol
//	browser:
//	  headless: true
//	  navigation_timeout_ms: 10000
type Config struct {
	Viewport expand.Viewport `yaml:"viewport"`
	Split    string          `yaml:"split"`
	Browser  browser.Config  `yaml:"browser"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	b := browser.DefaultConfig()
	return Config{
		Viewport: expand.Viewport{
			Width:  float64(b.GetViewportWidth()),
			Height: float64(b.GetViewportHeight()),
		},
		Split:   SplitLinesKeepEOL,
		Browser: b,
	}
}

// Load reads path over Default(). An empty path, or a path that does not
// exist, yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be defaulted.
func (c Config) Validate() error {
	if c.Viewport.Width < 0 || c.Viewport.Height < 0 {
		return fmt.Errorf("viewport must not be negative, got %vx%v", c.Viewport.Width, c.Viewport.Height)
	}
	if _, err := c.SplitFunc(); err != nil {
		return err
	}
	return nil
}

// SplitFunc maps Split to a bufio.SplitFunc. An empty Split keeps end-of-line
// markers.
func (c Config) SplitFunc() (bufio.SplitFunc, error) {
	switch c.Split {
	case "", SplitLinesKeepEOL:
		return lines.ScanLines, nil
	case SplitLines:
		return bufio.ScanLines, nil
	default:
		return nil, fmt.Errorf("unknown split mode %q", c.Split)
	}
}
