// Package elementtest provides an in-memory fake accessibility tree for
// tests. Nodes satisfy element.Handle, can simulate destroyed remote
// nodes, sibling cycles, and count how often each accessor was hit so
// tests can assert on round-trip budgets.
package elementtest

import (
	"errors"

	"chatnav/internal/element"
)

// ErrDead is returned by Focus/Invoke on destroyed nodes.
var ErrDead = errors.New("remote node destroyed")

// Node is a fake tree node implementing element.Handle.
type Node struct {
	name        string
	role        element.Role
	states      element.StateSet
	value       string
	description string
	className   string
	frameworkID string

	parent   *Node
	children []*Node

	dead       bool  // all accessors fail soft, Focus/Invoke error
	nextLoop   *Node // overrides NextSibling to simulate a cycle
	simplified bool  // expose children through SimplifiedChildren

	// Accessor counters, readable by tests.
	NameCalls  int
	RoleCalls  int
	ChildCalls int // FirstChild + SimplifiedChildren hits
	Focused    int // successful Focus calls
	Invoked    int
}

// New builds a node with the given name, role and children.
func New(name string, role element.Role, children ...*Node) *Node {
	n := &Node{name: name, role: role, children: children}
	for _, c := range children {
		c.parent = n
	}
	return n
}

// WithStates sets the node's interaction states.
func (n *Node) WithStates(set element.StateSet) *Node { n.states = set; return n }

// Focusable marks the node focusable.
func (n *Node) Focusable() *Node {
	n.states = n.states.With(element.StateFocusable)
	return n
}

// WithValue sets the value accessor result.
func (n *Node) WithValue(v string) *Node { n.value = v; return n }

// WithDescription sets the description accessor result.
func (n *Node) WithDescription(d string) *Node { n.description = d; return n }

// WithClassName sets the class-name accessor result.
func (n *Node) WithClassName(c string) *Node { n.className = c; return n }

// WithFrameworkID sets the framework identifier.
func (n *Node) WithFrameworkID(id string) *Node { n.frameworkID = id; return n }

// Kill marks the node destroyed: every accessor returns its default and
// Focus/Invoke fail.
func (n *Node) Kill() *Node { n.dead = true; return n }

// LoopTo makes NextSibling report target, simulating a corrupt sibling
// chain.
func (n *Node) LoopTo(target *Node) *Node { n.nextLoop = target; return n }

// Simplified makes the node expose its children via SimplifiedChildren,
// emulating the host object model's collapsed traversal.
func (n *Node) Simplified() *Node { n.simplified = true; return n }

// Add appends children after construction.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		c.parent = n
	}
	n.children = append(n.children, children...)
	return n
}

// Walk applies fn to the node and every descendant.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.children {
		c.Walk(fn)
	}
}

func (n *Node) Name() string {
	n.NameCalls++
	if n.dead {
		return ""
	}
	return n.name
}

func (n *Node) Role() element.Role {
	n.RoleCalls++
	if n.dead {
		return element.RoleUnknown
	}
	return n.role
}

func (n *Node) States() element.StateSet {
	if n.dead {
		return 0
	}
	return n.states
}

func (n *Node) Value() string {
	if n.dead {
		return ""
	}
	return n.value
}

func (n *Node) Description() string {
	if n.dead {
		return ""
	}
	return n.description
}

func (n *Node) ClassName() string {
	if n.dead {
		return ""
	}
	return n.className
}

func (n *Node) FrameworkID() string {
	if n.dead {
		return ""
	}
	return n.frameworkID
}

func (n *Node) ChildCount() int {
	if n.dead {
		return 0
	}
	return len(n.children)
}

func (n *Node) Parent() element.Handle {
	if n.dead || n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) FirstChild() element.Handle {
	n.ChildCalls++
	if n.dead || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

func (n *Node) NextSibling() element.Handle {
	if n.nextLoop != nil {
		return n.nextLoop
	}
	if n.dead || n.parent == nil {
		return nil
	}
	siblings := n.parent.children
	for i, s := range siblings {
		if s == n && i+1 < len(siblings) {
			return siblings[i+1]
		}
	}
	return nil
}

func (n *Node) SimplifiedChildren() []element.Handle {
	if !n.simplified {
		return nil
	}
	n.ChildCalls++
	if n.dead {
		return []element.Handle{}
	}
	out := make([]element.Handle, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

func (n *Node) Focus() error {
	if n.dead {
		return ErrDead
	}
	n.Focused++
	return nil
}

func (n *Node) Invoke() error {
	if n.dead {
		return ErrDead
	}
	n.Invoked++
	return nil
}

func (n *Node) Same(other element.Handle) bool {
	o, ok := other.(*Node)
	return ok && o == n
}
