package finder

import "testing"

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     bool
	}{
		{"Text Channels", []string{"channels"}, true},
		{"HELLO WORLD", []string{"hello"}, true},
		{"hello", []string{"HELLO WORLD"}, false},
		{"Messages in #general", []string{"messages in"}, true},
		{"", []string{""}, false},
		{"", []string{"anything"}, false},
		{"anything", nil, false},
		{"Members list", []string{"people", "members"}, true},
	}
	for _, tt := range tests {
		if got := Matches(tt.name, tt.patterns); got != tt.want {
			t.Errorf("Matches(%q, %v) = %v, want %v", tt.name, tt.patterns, got, tt.want)
		}
	}
}

func TestMatchesWithExclusion(t *testing.T) {
	pats := DefaultPatterns()

	tests := []struct {
		name string
		want bool
	}{
		{"Messages in #general", true},
		{"Chat messages", true},
		{"Direct Messages", false},
		{"Direct Messages (3)", false},
		{"Message Requests", false},
		{"GROUP MESSAGES", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := MatchesWithExclusion(tt.name, pats.Messages, pats.MessageExclude); got != tt.want {
			t.Errorf("MatchesWithExclusion(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestPatternsMerge(t *testing.T) {
	base := DefaultPatterns()
	merged := base.merge(Patterns{Servers: []string{"custom sidebar"}})

	if len(merged.Servers) != 1 || merged.Servers[0] != "custom sidebar" {
		t.Errorf("override not applied: %v", merged.Servers)
	}
	if len(merged.Channels) != len(base.Channels) {
		t.Errorf("unrelated field changed: %v", merged.Channels)
	}
}
