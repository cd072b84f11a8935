// Package remote attaches the engine to a running Chromium-based chat
// client over the DevTools protocol and hands out root handles. All
// other packages reach the remote tree only through element.Handle.
package remote

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"chatnav/internal/element"
)

// DefaultAppTitle selects the chat client's page among the endpoint's
// targets.
const DefaultAppTitle = "Discord"

// Options configures Connect.
type Options struct {
	// DebuggerURL is the DevTools endpoint (ws:// or http://host:port).
	// Empty launches a browser instead, which is mainly useful for
	// development against the web client.
	DebuggerURL string
	// AppTitle picks the page whose title or URL contains this
	// substring. Empty means DefaultAppTitle.
	AppTitle string
	// Raw exposes roots through the raw protocol representation instead
	// of the host object model.
	Raw    bool
	Logger *zap.Logger
}

// Session is a live connection to the client. It implements
// finder.Session.
type Session struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	raw      bool
	log      *zap.Logger
}

// Connect attaches to the configured endpoint and resolves the client's
// page.
func Connect(opts Options) (*Session, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.AppTitle == "" {
		opts.AppTitle = DefaultAppTitle
	}

	s := &Session{raw: opts.Raw, log: opts.Logger}

	controlURL := opts.DebuggerURL
	if controlURL == "" {
		l := launcher.New().Headless(false)
		u, err := l.Launch()
		if err != nil {
			return nil, fmt.Errorf("launch browser: %w", err)
		}
		s.launcher = l
		controlURL = u
	} else if !strings.HasPrefix(controlURL, "ws") {
		u, err := launcher.ResolveURL(controlURL)
		if err != nil {
			return nil, fmt.Errorf("resolve debugger url %s: %w", controlURL, err)
		}
		controlURL = u
	}

	browser := rod.New().ControlURL(controlURL)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", controlURL, err)
	}
	s.browser = browser

	page, err := pickPage(browser, opts.AppTitle)
	if err != nil {
		_ = browser.Close()
		return nil, err
	}
	s.page = page

	if err := (proto.AccessibilityEnable{}).Call(page); err != nil {
		s.log.Debug("accessibility domain unavailable", zap.Error(err))
	}

	s.log.Info("attached to chat client",
		zap.String("control_url", controlURL), zap.Bool("raw", opts.Raw))
	return s, nil
}

// pickPage returns the target whose title or URL contains appTitle,
// falling back to the first page.
func pickPage(browser *rod.Browser, appTitle string) (*rod.Page, error) {
	pages, err := browser.Pages()
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("endpoint has no pages")
	}
	needle := strings.ToLower(appTitle)
	for _, p := range pages {
		info, err := p.Info()
		if err != nil {
			continue
		}
		if strings.Contains(strings.ToLower(info.Title), needle) ||
			strings.Contains(strings.ToLower(info.URL), needle) {
			return p, nil
		}
	}
	return pages[0], nil
}

// Foreground returns the client's document root, or nil when the remote
// side is gone. In raw mode this is the accessibility root node.
func (s *Session) Foreground() element.Handle {
	if s.raw {
		res, err := proto.AccessibilityGetRootAXNode{}.Call(s.page)
		if err != nil || res.Node == nil {
			return nil
		}
		return element.NewRaw(s.page, res.Node)
	}

	res, err := proto.DOMGetDocument{}.Call(s.page)
	if err != nil || res.Root == nil {
		return nil
	}
	for _, child := range res.Root.Children {
		if child != nil && child.NodeType == 1 {
			el, err := s.page.ElementFromNode(child)
			if err != nil {
				return nil
			}
			return element.NewHost(s.page, el)
		}
	}
	return nil
}

// Focus returns the element that currently holds input focus, or nil.
func (s *Session) Focus() element.Handle {
	res, err := proto.RuntimeEvaluate{Expression: "document.activeElement"}.Call(s.page)
	if err != nil || res.Result == nil || res.Result.ObjectID == "" {
		return nil
	}
	el, err := s.page.ElementFromObject(res.Result)
	if err != nil {
		return nil
	}
	return element.NewHost(s.page, el)
}

// ReviewTarget scrolls h into the viewport as the host's review-cursor
// analog.
func (s *Session) ReviewTarget(h element.Handle) bool {
	return element.BringIntoView(h)
}

// Close disconnects and, when a browser was launched, shuts it down.
func (s *Session) Close() {
	if s.browser != nil {
		_ = s.browser.Close()
	}
	if s.launcher != nil {
		s.launcher.Kill()
		s.launcher.Cleanup()
	}
}
