// Package element provides a uniform, fail-soft accessor surface over one
// node of a remote accessibility tree.
//
// Two concrete representations exist: hostHandle, backed by the host
// object model (rod's element layer), and rawHandle, backed by direct
// protocol calls against the Chromium accessibility domain. Both satisfy
// Handle; callers must not care which backs a given handle.
//
// Every accessor performs a fresh remote read. Handles cache nothing —
// the caller decides when to cache, not the handle.
package element

// Handle is an opaque reference to one remote accessibility node.
//
// Accessors are fail-soft: if the remote node has been destroyed or the
// round trip fails, they return the zero default (empty string,
// RoleUnknown, empty StateSet, 0, nil) and never panic. Only Focus and
// Invoke report errors, because their callers need to fall back.
type Handle interface {
	// Name returns the accessible name, or "" on failure.
	Name() string
	// Role returns the mapped role, or RoleUnknown on failure.
	Role() Role
	// States returns the interaction states, empty on failure.
	States() StateSet
	// Value returns the current value, or "" on failure.
	Value() string
	// Description returns the accessible description, or "" on failure.
	Description() string
	// ClassName returns the native class attribute, or "" on failure.
	ClassName() string
	// FrameworkID returns the framework-assigned identifier, or "".
	FrameworkID() string
	// ChildCount returns the raw child count if cheaply available.
	// 0 means unknown, not necessarily childless.
	ChildCount() int

	// Parent returns the parent handle, or nil at the root / on failure.
	Parent() Handle
	// FirstChild returns the first child, or nil.
	FirstChild() Handle
	// NextSibling returns the next sibling, or nil.
	NextSibling() Handle
	// SimplifiedChildren returns the children as seen through the host
	// object model's simplified traversal, which collapses unnamed
	// structural wrapper nodes. Returns nil (not empty) when the
	// representation has no simplified view, in which case callers
	// enumerate via FirstChild/NextSibling.
	SimplifiedChildren() []Handle

	// Focus moves keyboard focus to the node.
	Focus() error
	// Invoke performs the node's default action.
	Invoke() error

	// Same reports whether other refers to the same remote node. It is a
	// local identity comparison and performs no round trip.
	Same(other Handle) bool
}

// State is a single interaction state flag.
type State uint8

const (
	// StateFocusable marks a node that can receive keyboard focus.
	StateFocusable State = 1 << iota
	// StateUnavailable marks a disabled node.
	StateUnavailable
)

// StateSet is a set of interaction states.
type StateSet uint8

// Has reports whether the set contains s.
func (set StateSet) Has(s State) bool { return set&StateSet(s) != 0 }

// With returns a copy of the set with s added.
func (set StateSet) With(s State) StateSet { return set | StateSet(s) }
