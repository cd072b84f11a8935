package cmd

import (
	"testing"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
)

func TestResolveDebuggerURL(t *testing.T) {
	tests := []struct {
		flag, env, cfg string
		want           string
	}{
		{"ws://flag", "ws://env", "ws://cfg", "ws://flag"},
		{"", "ws://env", "ws://cfg", "ws://env"},
		{"", "", "ws://cfg", "ws://cfg"},
		{"", "", "", ""},
	}
	for _, tt := range tests {
		if got := resolveDebuggerURL(tt.flag, tt.env, tt.cfg); got != tt.want {
			t.Errorf("resolveDebuggerURL(%q, %q, %q) = %q, want %q",
				tt.flag, tt.env, tt.cfg, got, tt.want)
		}
	}
}

func TestDescribeHandle(t *testing.T) {
	h := elementtest.New("Message #general", element.RoleEdit).
		Focusable().
		WithValue("draft text").
		WithClassName("editor")

	info := describeHandle(h)
	if info.Name != "Message #general" || info.Role != "EDIT" ||
		!info.Focusable || info.Value != "draft text" || info.Class != "editor" {
		t.Errorf("describeHandle = %+v", info)
	}
}
