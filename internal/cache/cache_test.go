package cache

import (
	"testing"
	"time"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
	"chatnav/internal/walk"
)

// fakeClock is a manually advanced clock.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLayers(ttl time.Duration) (*Layers, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	return NewWithClock(ttl, walk.Children, clock.now), clock
}

func chatTree() *elementtest.Node {
	return elementtest.New("window", element.RoleWindow,
		elementtest.New("Servers", element.RoleTreeView,
			elementtest.New("My Server", element.RoleTreeViewItem)),
		elementtest.New("", element.RoleGrouping,
			elementtest.New("hidden", element.RoleGrouping)),
		elementtest.New("Close", element.RoleButton,
			elementtest.New("icon", element.RoleGraphic)))
}

func TestLayers_Depth1(t *testing.T) {
	layers, _ := newTestLayers(0)
	root := chatTree()

	d1 := layers.Depth1(func() element.Handle { return root })
	if len(d1) != 3 {
		t.Fatalf("depth 1 has %d entries, want 3", len(d1))
	}
	if d1[0].Name != "Servers" || d1[1].Name != "" || d1[2].Name != "Close" {
		t.Errorf("depth-1 names wrong: %q %q %q", d1[0].Name, d1[1].Name, d1[2].Name)
	}
}

func TestLayers_Depth2OnlyUnderNamedNonLeafParents(t *testing.T) {
	layers, _ := newTestLayers(0)
	root := chatTree()

	d2 := layers.Depth2(func() element.Handle { return root })
	// "hidden" is under an unnamed parent, "icon" under a leaf-role
	// button; only "My Server" qualifies.
	if len(d2) != 1 {
		t.Fatalf("depth 2 has %d entries, want 1: %+v", len(d2), d2)
	}
	if d2[0].Name != "My Server" || d2[0].ParentName != "Servers" {
		t.Errorf("depth-2 entry = %q under %q, want My Server under Servers", d2[0].Name, d2[0].ParentName)
	}
}

func TestLayers_SnapshotStableWithinTTL(t *testing.T) {
	layers, clock := newTestLayers(3 * time.Second)
	root := chatTree()

	first := layers.Depth1(func() element.Handle { return root })

	// The tree mutates, but the snapshot must not change until expiry.
	root.Add(elementtest.New("Members", element.RoleList))
	clock.advance(time.Second)

	second := layers.Depth1(func() element.Handle { return root })
	if len(second) != len(first) {
		t.Fatalf("snapshot changed within TTL: %d entries, want %d", len(second), len(first))
	}

	clock.advance(3 * time.Second)
	third := layers.Depth1(func() element.Handle { return root })
	if len(third) != len(first)+1 {
		t.Fatalf("snapshot not recomputed after TTL: %d entries, want %d", len(third), len(first)+1)
	}
}

func TestLayers_ResolveCalledOncePerSnapshot(t *testing.T) {
	layers, _ := newTestLayers(3 * time.Second)
	root := chatTree()

	resolves := 0
	resolve := func() element.Handle { resolves++; return root }

	layers.Depth1(resolve)
	layers.Depth2(resolve)
	layers.Depth1(resolve)
	if resolves != 1 {
		t.Errorf("resolve called %d times within TTL, want 1", resolves)
	}
}

func TestLayers_NilRoot(t *testing.T) {
	layers, _ := newTestLayers(0)

	d1 := layers.Depth1(func() element.Handle { return nil })
	if len(d1) != 0 {
		t.Errorf("nil root produced %d depth-1 entries, want 0", len(d1))
	}
	// The empty snapshot is still a valid snapshot.
	if _, ok := layers.Age(); !ok {
		t.Error("nil-root snapshot did not validate")
	}
}

func TestLayers_Invalidate(t *testing.T) {
	layers, _ := newTestLayers(time.Hour)
	root := chatTree()

	resolves := 0
	resolve := func() element.Handle { resolves++; return root }

	layers.Depth1(resolve)
	layers.Invalidate()
	if _, ok := layers.Age(); ok {
		t.Error("Age reports a valid snapshot after Invalidate")
	}
	layers.Depth1(resolve)
	if resolves != 2 {
		t.Errorf("resolve called %d times across Invalidate, want 2", resolves)
	}
}

func TestLayers_Age(t *testing.T) {
	layers, clock := newTestLayers(time.Hour)
	root := chatTree()

	if _, ok := layers.Age(); ok {
		t.Error("Age reports a snapshot before any lookup")
	}
	layers.Depth1(func() element.Handle { return root })
	clock.advance(2 * time.Second)
	age, ok := layers.Age()
	if !ok || age != 2*time.Second {
		t.Errorf("Age() = %v, %v, want 2s, true", age, ok)
	}
}
