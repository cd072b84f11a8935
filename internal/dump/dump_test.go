package dump

import (
	"strings"
	"testing"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
	"chatnav/internal/finder"
)

type fakeSession struct {
	foreground element.Handle
	focus      element.Handle
}

func (s *fakeSession) Foreground() element.Handle       { return s.foreground }
func (s *fakeSession) Focus() element.Handle            { return s.focus }
func (s *fakeSession) ReviewTarget(element.Handle) bool { return false }

func TestTree(t *testing.T) {
	input := elementtest.New("Message #general", element.RoleEdit)
	doc := elementtest.New("", element.RoleDocument,
		elementtest.New("Servers", element.RoleTreeView,
			elementtest.New("My Server", element.RoleTreeViewItem)),
		elementtest.New("", element.RoleGrouping),
		input)
	window := elementtest.New("w", element.RoleWindow, doc)

	e := finder.New(&fakeSession{foreground: window, focus: input}, finder.Config{})
	out := Tree(e, nil, 4)

	for _, want := range []string{
		"--- Focus ---",
		`role=EDIT name="Message #general"`,
		"--- Content root ---",
		`d1 TREEVIEW: "Servers"`,
		`d2 TREEVIEWITEM: "My Server"`,
		"named",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	// Unnamed nodes are counted but not listed.
	if strings.Contains(out, "d1 GROUPING") {
		t.Errorf("dump lists an unnamed node:\n%s", out)
	}
}

func TestTree_NoRoot(t *testing.T) {
	e := finder.New(&fakeSession{}, finder.Config{})
	out := Tree(e, nil, 4)
	if !strings.Contains(out, "No root available.") {
		t.Errorf("dump without a window:\n%s", out)
	}
}

func TestTree_ExplicitRoot(t *testing.T) {
	root := elementtest.New("subtree", element.RoleGrouping,
		elementtest.New("inside", element.RoleStaticText))
	e := finder.New(&fakeSession{}, finder.Config{})

	out := Tree(e, root, 2)
	if !strings.Contains(out, `d1 STATICTEXT: "inside"`) {
		t.Errorf("explicit root not walked:\n%s", out)
	}
}
