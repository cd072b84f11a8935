package walk

import (
	"testing"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
)

func TestChildren_Order(t *testing.T) {
	a := elementtest.New("a", element.RoleButton)
	b := elementtest.New("b", element.RoleButton)
	c := elementtest.New("c", element.RoleButton)
	root := elementtest.New("root", element.RoleGrouping, a, b, c)

	got := Children(root)
	if len(got) != 3 {
		t.Fatalf("Children returned %d elements, want 3", len(got))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got[i].Name() != want {
			t.Errorf("child %d = %q, want %q", i, got[i].Name(), want)
		}
	}
}

func TestChildren_Nil(t *testing.T) {
	if got := Children(nil); got != nil {
		t.Errorf("Children(nil) = %v, want nil", got)
	}
}

func TestChildren_SiblingCycle(t *testing.T) {
	a := elementtest.New("a", element.RoleButton)
	b := elementtest.New("b", element.RoleButton)
	root := elementtest.New("root", element.RoleGrouping, a, b)
	b.LoopTo(a)

	got := Children(root)
	if len(got) != 2 {
		t.Fatalf("cycle not detected: got %d children, want 2", len(got))
	}
}

func TestChildren_SelfLoop(t *testing.T) {
	a := elementtest.New("a", element.RoleButton)
	root := elementtest.New("root", element.RoleGrouping, a)
	a.LoopTo(a)

	got := Children(root)
	if len(got) != 1 {
		t.Fatalf("self-loop not detected: got %d children, want 1", len(got))
	}
}

func TestChildren_PrefersSimplifiedView(t *testing.T) {
	a := elementtest.New("a", element.RoleButton)
	b := elementtest.New("b", element.RoleButton)
	root := elementtest.New("root", element.RoleGrouping, a, b).Simplified()

	got := Children(root)
	if len(got) != 2 {
		t.Fatalf("got %d children, want 2", len(got))
	}
	// The simplified path never touches the sibling chain.
	if a.ChildCalls != 0 {
		t.Errorf("simplified enumeration descended into child a")
	}
}

func TestChildren_DeadNodeIsEmpty(t *testing.T) {
	a := elementtest.New("a", element.RoleButton)
	root := elementtest.New("root", element.RoleGrouping, a).Kill()

	if got := Children(root); len(got) != 0 {
		t.Errorf("dead node returned %d children, want 0", len(got))
	}
}
