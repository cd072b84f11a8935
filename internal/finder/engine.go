package finder

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"chatnav/internal/cache"
	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// windowClass is the top-level native window class that bounds the
// walk-up during content-root resolution.
const windowClass = "Chrome_WidgetWin_1"

// Session supplies the engine's entry points into the remote tree.
type Session interface {
	// Foreground returns the foreground window handle, or nil.
	Foreground() element.Handle
	// Focus returns the current input-focus handle, or nil.
	Focus() element.Handle
	// ReviewTarget positions the host environment's review cursor on h
	// without moving keyboard focus. Returns false when the host has no
	// such mechanism.
	ReviewTarget(h element.Handle) bool
}

// Config tunes an Engine. Zero values select defaults.
type Config struct {
	Logger   *zap.Logger
	Patterns *Patterns
	CacheTTL time.Duration
	Walk     walk.Options
	Now      func() time.Time
}

// Engine composes the walker, the two-layer cache and the pattern sets
// into the region finders. It is single-threaded and synchronous: every
// finder runs to completion on the calling thread, and a worst-case
// uncached call can block for up to the walk timeout.
type Engine struct {
	session Session
	layers  *cache.Layers
	log     *zap.Logger
	pats    Patterns
	walkOpt walk.Options
}

// New creates an Engine over session.
func New(session Session, cfg Config) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Walk.Now == nil {
		cfg.Walk.Now = cfg.Now
	}
	pats := DefaultPatterns()
	if cfg.Patterns != nil {
		pats = pats.merge(*cfg.Patterns)
	}
	return &Engine{
		session: session,
		layers:  cache.NewWithClock(cfg.CacheTTL, walk.Children, cfg.Now),
		log:     cfg.Logger,
		pats:    pats,
		walkOpt: cfg.Walk,
	}
}

// Patterns returns the active pattern sets.
func (e *Engine) Patterns() Patterns { return e.pats }

// Invalidate discards the cached tree snapshot.
func (e *Engine) Invalidate() { e.layers.Invalidate() }

// Foreground returns the foreground window handle, or nil.
func (e *Engine) Foreground() element.Handle { return e.session.Foreground() }

// FocusHandle returns the current input-focus handle, or nil.
func (e *Engine) FocusHandle() element.Handle { return e.session.Focus() }

// WalkOptions returns the engine's walk bounds.
func (e *Engine) WalkOptions() walk.Options { return e.walkOpt }

// ContentRoot resolves the root of the chat client's content area. An
// explicit root wins. Otherwise: walk up from the input focus preferring
// a document/application/pane ancestor; else walk down from the
// foreground window looking for the rendering surface; else the
// foreground window itself. Returns nil only when no foreground window
// exists.
func (e *Engine) ContentRoot(explicit element.Handle) element.Handle {
	if explicit != nil {
		return explicit
	}

	// Walk up from focus, stopping at the native window shell.
	if focus := e.session.Focus(); focus != nil {
		var chain []element.Handle
		cur := focus
		for depth := 0; cur != nil && depth < 40; depth++ {
			if cur.ClassName() == windowClass || cur.Role() == element.RoleWindow {
				break
			}
			chain = append(chain, cur)
			cur = cur.Parent()
		}
		if len(chain) > 0 {
			for i := len(chain) - 1; i >= 0; i-- {
				switch chain[i].Role() {
				case element.RoleDocument, element.RoleApplication, element.RolePane:
					return chain[i]
				}
			}
			return chain[len(chain)-1]
		}
	}

	fg := e.session.Foreground()
	if fg == nil {
		return nil
	}

	// Walk down from the foreground window for the render surface.
	for _, child := range walk.Children(fg) {
		cls := child.ClassName()
		if strings.Contains(cls, "Chrome_RenderWidget") || strings.Contains(cls, "Intermediate") {
			if kids := walk.Children(child); len(kids) > 0 {
				return kids[0]
			}
			return child
		}
		switch child.Role() {
		case element.RoleDocument, element.RoleApplication,
			element.RolePane, element.RoleGrouping:
			return child
		}
	}

	return fg
}

// depth1 returns the cached (name, handle) list for the content root's
// immediate children.
func (e *Engine) depth1() []cache.Entry {
	return e.layers.Depth1(func() element.Handle { return e.ContentRoot(nil) })
}

// depth2 returns the cached grandchildren, refreshing through depth1.
func (e *Engine) depth2() []cache.Entry2 {
	return e.layers.Depth2(func() element.Handle { return e.ContentRoot(nil) })
}

// d1FindName returns the first depth-1 child matching patterns.
func (e *Engine) d1FindName(patterns []string) element.Handle {
	for _, entry := range e.depth1() {
		if Matches(entry.Name, patterns) {
			return entry.Handle
		}
	}
	return nil
}

// d2FindName checks depth 1 first, then depth 2.
func (e *Engine) d2FindName(patterns []string) element.Handle {
	if h := e.d1FindName(patterns); h != nil {
		return h
	}
	for _, entry := range e.depth2() {
		if Matches(entry.Name, patterns) {
			return entry.Handle
		}
	}
	return nil
}

// d1Landmark returns the depth-1 child whose name contains text, e.g.
// "(server)" locates the current server's container.
func (e *Engine) d1Landmark(text string) element.Handle {
	for _, entry := range e.depth1() {
		if entry.Name != "" && Matches(entry.Name, []string{text}) {
			return entry.Handle
		}
	}
	return nil
}

