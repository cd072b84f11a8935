package walk

import (
	"testing"
	"time"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
)

func collect(root element.Handle, opts Options) []string {
	var names []string
	for h := range Descendants(root, opts) {
		names = append(names, h.Name())
	}
	return names
}

func TestDescendants_BreadthFirstOrder(t *testing.T) {
	//      root
	//     /    \
	//    a      b
	//   / \      \
	//  a1  a2     b1
	root := elementtest.New("root", element.RoleGrouping,
		elementtest.New("a", element.RoleGrouping,
			elementtest.New("a1", element.RoleGrouping),
			elementtest.New("a2", element.RoleGrouping)),
		elementtest.New("b", element.RoleGrouping,
			elementtest.New("b1", element.RoleGrouping)))

	got := collect(root, Options{})
	want := []string{"a", "b", "a1", "a2", "b1"}
	if len(got) != len(want) {
		t.Fatalf("yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("yielded %v, want %v", got, want)
		}
	}
}

func TestDescendants_RootNeverYielded(t *testing.T) {
	root := elementtest.New("root", element.RoleGrouping,
		elementtest.New("a", element.RoleGrouping))

	for _, name := range collect(root, Options{}) {
		if name == "root" {
			t.Fatal("walk yielded the root itself")
		}
	}
}

func TestDescendants_NilRoot(t *testing.T) {
	if got := collect(nil, Options{}); got != nil {
		t.Errorf("nil root yielded %v, want nothing", got)
	}
}

func TestDescendants_MaxDepth(t *testing.T) {
	// A chain deeper than the bound.
	leaf := elementtest.New("d5", element.RoleGrouping)
	chain := leaf
	for _, name := range []string{"d4", "d3", "d2", "d1"} {
		chain = elementtest.New(name, element.RoleGrouping, chain)
	}
	root := elementtest.New("root", element.RoleGrouping, chain)

	got := collect(root, Options{MaxDepth: 3})
	want := []string{"d1", "d2", "d3"}
	if len(got) != len(want) {
		t.Fatalf("yielded %v, want %v", got, want)
	}
}

func TestDescendants_LeafRolePruned(t *testing.T) {
	// The button itself is yielded but its children are not.
	root := elementtest.New("root", element.RoleGrouping,
		elementtest.New("btn", element.RoleButton,
			elementtest.New("icon", element.RoleGraphic)))

	got := collect(root, Options{})
	if len(got) != 1 || got[0] != "btn" {
		t.Fatalf("yielded %v, want [btn]", got)
	}
}

func TestDescendants_LeafRoleRootStillExpanded(t *testing.T) {
	// Pruning applies below the root only; an explicit leaf-role root
	// still has its children enumerated.
	root := elementtest.New("btn", element.RoleButton,
		elementtest.New("icon", element.RoleGraphic))

	got := collect(root, Options{})
	if len(got) != 1 || got[0] != "icon" {
		t.Fatalf("yielded %v, want [icon]", got)
	}
}

func TestDescendants_Timeout(t *testing.T) {
	var wide []*elementtest.Node
	for i := 0; i < 10; i++ {
		wide = append(wide, elementtest.New("child", element.RoleGrouping))
	}
	root := elementtest.New("root", element.RoleGrouping, wide...)

	// The clock jumps past the deadline after a few reads.
	base := time.Now()
	calls := 0
	now := func() time.Time {
		calls++
		if calls > 4 {
			return base.Add(time.Minute)
		}
		return base
	}

	got := collect(root, Options{Timeout: time.Second, Now: now})
	if len(got) >= 10 {
		t.Fatalf("timeout did not stop the walk: yielded %d elements", len(got))
	}
}

func TestDescendants_EarlyBreak(t *testing.T) {
	root := elementtest.New("root", element.RoleGrouping,
		elementtest.New("a", element.RoleGrouping),
		elementtest.New("b", element.RoleGrouping))

	count := 0
	for range Descendants(root, Options{}) {
		count++
		break
	}
	if count != 1 {
		t.Fatalf("consumed %d elements after break, want 1", count)
	}
}
