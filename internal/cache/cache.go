// Package cache holds a short-lived snapshot of the first two tree
// layers below the resolved content root. Enumerating those layers costs
// one round trip per node; many independent finder calls in a short span
// would each re-pay that cost without it.
package cache

import (
	"time"

	"chatnav/internal/element"
)

// DefaultTTL is how long a computed snapshot stays valid.
const DefaultTTL = 3 * time.Second

// Entry is one depth-1 child of the root.
type Entry struct {
	Name   string
	Handle element.Handle
}

// Entry2 is one depth-2 child, recorded with its parent's name.
type Entry2 struct {
	Name       string
	Handle     element.Handle
	ParentName string
}

// ChildFunc enumerates one level of children.
type ChildFunc func(element.Handle) []element.Handle

// Layers caches the first two layers below a single root, computed
// together in one pass and atomically replaced as a whole. A snapshot is
// either fully reused (within TTL) or fully discarded — never partially
// invalidated. Staleness up to the TTL is an accepted property, not a
// bug.
//
// Layers is unsynchronized: the engine's calling convention assumes a
// single logical thread of execution. Embedders invoking the engine
// concurrently must serialize those calls themselves.
type Layers struct {
	ttl      time.Duration
	now      func() time.Time
	children ChildFunc

	d1    []Entry
	d2    []Entry2
	stamp time.Time
	valid bool
}

// New creates a cache with the given TTL (0 = DefaultTTL) and child
// enumerator.
func New(ttl time.Duration, children ChildFunc) *Layers {
	return NewWithClock(ttl, children, time.Now)
}

// NewWithClock is New with an explicit clock, for deterministic TTL
// tests.
func NewWithClock(ttl time.Duration, children ChildFunc, now func() time.Time) *Layers {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &Layers{ttl: ttl, now: now, children: children}
}

// Depth1 returns the cached depth-1 entries, recomputing both layers
// when the snapshot is missing or older than the TTL. resolve is called
// only on recomputation; a nil root produces an empty (but valid)
// snapshot, never an error. The recomputation is the one place real
// latency is paid.
func (c *Layers) Depth1(resolve func() element.Handle) []Entry {
	now := c.now()
	if c.valid && now.Sub(c.stamp) < c.ttl {
		return c.d1
	}

	var d1 []Entry
	var d2 []Entry2
	if root := resolve(); root != nil {
		for _, child := range c.children(root) {
			name := child.Name()
			d1 = append(d1, Entry{Name: name, Handle: child})
			// Depth 2 is only recorded under named non-leaf parents:
			// the role call is paid only for children that already
			// matched by having a name.
			if name == "" || child.Role().Leaf() {
				continue
			}
			for _, gc := range c.children(child) {
				if gcName := gc.Name(); gcName != "" {
					d2 = append(d2, Entry2{Name: gcName, Handle: gc, ParentName: name})
				}
			}
		}
	}

	c.d1 = d1
	c.d2 = d2
	c.stamp = now
	c.valid = true
	return c.d1
}

// Depth2 returns the cached depth-2 entries. It delegates to Depth1 to
// guarantee freshness; both layers are always recomputed together.
func (c *Layers) Depth2(resolve func() element.Handle) []Entry2 {
	c.Depth1(resolve)
	return c.d2
}

// Invalidate discards the snapshot so the next lookup recomputes.
func (c *Layers) Invalidate() {
	c.d1 = nil
	c.d2 = nil
	c.valid = false
}

// Age returns how old the current snapshot is, and false when no valid
// snapshot exists.
func (c *Layers) Age() (time.Duration, bool) {
	if !c.valid {
		return 0, false
	}
	return c.now().Sub(c.stamp), true
}
