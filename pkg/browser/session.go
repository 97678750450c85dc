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

// Package browser measures elements of a live page so that the expand bleed
// checks can run against a real viewport.
package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/benoit-pereira-da-silva/expand/pkg/expand"
)

// Session owns one browser connection.
type Session struct {
	cfg Config

	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
}

func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// Start connects to cfg.DebuggerURL, or launches a browser when it is empty.
// Calling Start on a started session is a no-op.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.browser != nil {
		return nil
	}

	controlURL := s.cfg.DebuggerURL
	if controlURL == "" {
		l := launcher.New().Headless(s.cfg.Headless)
		if s.cfg.Bin != "" {
			l = l.Bin(s.cfg.Bin)
		}
		u, err := l.Context(ctx).Launch()
		if err != nil {
			return fmt.Errorf("launch browser: %w", err)
		}
		s.launcher = l
		controlURL = u
	}

	b := rod.New().ControlURL(controlURL).Context(ctx)
	if err := b.Connect(); err != nil {
		s.killLocked()
		return fmt.Errorf("connect to browser: %w", err)
	}
	s.browser = b
	return nil
}

// Open navigates a new tab to url, applies the configured viewport and waits
// for the load event.
func (s *Session) Open(ctx context.Context, url string) (*Page, error) {
	if err := s.Start(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	b := s.browser
	s.mu.Unlock()

	page, err := b.Context(ctx).Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", url, err)
	}
	err = page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             s.cfg.GetViewportWidth(),
		Height:            s.cfg.GetViewportHeight(),
		DeviceScaleFactor: 1,
	})
	if err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("set viewport: %w", err)
	}
	if err := page.Timeout(s.cfg.NavigationTimeout()).WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("wait load %s: %w", url, err)
	}
	return &Page{page: page}, nil
}

// Close disconnects and, when the session launched the browser, kills it.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var err error
	if s.browser != nil {
		err = s.browser.Close()
		s.browser = nil
	}
	s.killLocked()
	return err
}

func (s *Session) killLocked() {
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher = nil
	}
}

// Page is an open tab. It implements expand.ViewportSource and Measurer.
type Page struct {
	page *rod.Page
}

var _ expand.ViewportSource = (*Page)(nil)

// Viewport reads window.innerWidth and window.innerHeight at call time.
func (p *Page) Viewport(ctx context.Context) (expand.Viewport, error) {
	res, err := p.page.Context(ctx).Eval(`() => ({width: window.innerWidth, height: window.innerHeight})`)
	if err != nil {
		return expand.Viewport{}, fmt.Errorf("read viewport: %w", err)
	}
	obj := res.Value.Map()
	return expand.Viewport{Width: obj["width"].Num(), Height: obj["height"].Num()}, nil
}

// ErrNoElement is returned by Measure when the selector matches nothing.
var ErrNoElement = errors.New("browser: no element matches selector")

// Measure returns the bounding client rect and computed margins of the first
// element matching selector.
func (p *Page) Measure(ctx context.Context, selector string) (expand.Rect, expand.Margin, error) {
	page := p.page.Context(ctx)
	has, el, err := page.Has(selector)
	if err != nil {
		return expand.Rect{}, expand.Margin{}, fmt.Errorf("query %q: %w", selector, err)
	}
	if !has {
		return expand.Rect{}, expand.Margin{}, fmt.Errorf("%w: %q", ErrNoElement, selector)
	}
	res, err := el.Eval(`() => {
		const r = this.getBoundingClientRect();
		const s = window.getComputedStyle(this);
		const px = (v) => parseFloat(v) || 0;
		return {
			top: r.top, right: r.right, bottom: r.bottom, left: r.left,
			width: r.width, height: r.height,
			marginTop: px(s.marginTop), marginRight: px(s.marginRight),
			marginBottom: px(s.marginBottom), marginLeft: px(s.marginLeft)
		};
	}`)
	if err != nil {
		return expand.Rect{}, expand.Margin{}, fmt.Errorf("measure %q: %w", selector, err)
	}
	obj := res.Value.Map()
	rect := expand.Rect{
		Top:    obj["top"].Num(),
		Right:  obj["right"].Num(),
		Bottom: obj["bottom"].Num(),
		Left:   obj["left"].Num(),
		Width:  obj["width"].Num(),
		Height: obj["height"].Num(),
	}
	margin := expand.Margin{
		Top:    obj["marginTop"].Num(),
		Right:  obj["marginRight"].Num(),
		Bottom: obj["marginBottom"].Num(),
		Left:   obj["marginLeft"].Num(),
	}
	return rect, margin, nil
}

func (p *Page) Close() error {
	return p.page.Close()
}
