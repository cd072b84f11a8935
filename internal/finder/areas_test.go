package finder

import (
	"testing"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
)

func TestAreas_FullLayout(t *testing.T) {
	e, _ := fullTreeEngine()

	areas := e.Areas()
	labels := make([]string, len(areas))
	for i, a := range areas {
		labels[i] = a.Label
	}

	want := []string{"Server list", "My Server", "Channel list", "Messages", "Members", "User area"}
	if len(labels) != len(want) {
		t.Fatalf("Areas = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("area %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestAreas_NoServerOpen(t *testing.T) {
	window := chatWindow("w",
		elementtest.New("Servers", element.RoleTreeView),
		elementtest.New("User area", element.RoleGrouping))
	e := newTestEngine(&fakeSession{foreground: window})

	areas := e.Areas()
	if len(areas) != 2 {
		t.Fatalf("Areas = %v, want server list and user area only", areas)
	}
	if areas[0].Label != "Server list" || areas[1].Label != "User area" {
		t.Errorf("Areas = %q, %q", areas[0].Label, areas[1].Label)
	}
}

func TestAreas_EmptyTree(t *testing.T) {
	e := newTestEngine(&fakeSession{foreground: chatWindow("empty")})
	if areas := e.Areas(); len(areas) != 0 {
		t.Errorf("Areas on an empty tree = %v, want none", areas)
	}
}
