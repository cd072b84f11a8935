package finder

import (
	"testing"

	"chatnav/internal/element"
	"chatnav/internal/element/elementtest"
)

func voiceTree() *elementtest.Node {
	userArea := elementtest.New("User area", element.RoleGrouping,
		elementtest.New("43 ms", element.RoleStaticText),
		elementtest.New("Voice connected", element.RoleStaticText),
		elementtest.New("General / My Server", element.RoleStaticText),
		elementtest.New("Noise suppression powered by Krisp", element.RoleStaticText))
	return chatWindow("#general — My Server — Discord", userArea)
}

func TestVoiceInfo(t *testing.T) {
	e := newTestEngine(&fakeSession{foreground: voiceTree()})

	info := e.VoiceInfo()
	if info == nil {
		t.Fatal("VoiceInfo = nil, want a connection")
	}
	if info.Latency != "43 ms" {
		t.Errorf("Latency = %q, want 43 ms", info.Latency)
	}
	if info.Status != "Voice connected" {
		t.Errorf("Status = %q, want Voice connected", info.Status)
	}
	if info.Channel != "General / My Server" {
		t.Errorf("Channel = %q", info.Channel)
	}
	if len(info.Extras) != 1 {
		t.Errorf("Extras = %v, want the noise suppression label", info.Extras)
	}
}

func TestVoiceInfo_MuteLabelIsNotAChannel(t *testing.T) {
	userArea := elementtest.New("User area", element.RoleGrouping,
		elementtest.New("Mute / Unmute", element.RoleButton))
	e := newTestEngine(&fakeSession{foreground: chatWindow("w", userArea)})

	// A slash inside a control label must not be read as channel/server.
	if info := e.VoiceInfo(); info != nil {
		t.Errorf("VoiceInfo = %+v, want nil", info)
	}
}

func TestVoiceInfo_Depth1StatusFallback(t *testing.T) {
	window := chatWindow("w",
		elementtest.New("User area", element.RoleGrouping),
		elementtest.New("Voice connected", element.RoleStaticText))
	e := newTestEngine(&fakeSession{foreground: window})

	info := e.VoiceInfo()
	if info == nil || info.Status != "Voice connected" {
		t.Fatalf("VoiceInfo = %+v, want the depth-1 status", info)
	}
}

func TestVoiceInfo_NoUserArea(t *testing.T) {
	e := newTestEngine(&fakeSession{foreground: chatWindow("empty")})
	if info := e.VoiceInfo(); info != nil {
		t.Errorf("VoiceInfo = %+v, want nil", info)
	}
}

func TestParseWindowTitle(t *testing.T) {
	tests := []struct {
		title   string
		channel string
		server  string
		dm      string
	}{
		{"#general — My Server — Discord", "#general", "My Server", ""},
		{"#general - My Server - Discord", "#general", "My Server", ""},
		{"@alice — Discord", "", "", "@alice"},
		{"My Server — Discord", "", "My Server", ""},
		{"Discord", "", "", ""},
		{"", "", "", ""},
		{"Friends — Discord", "", "Friends", ""},
	}
	for _, tt := range tests {
		var ctx WindowContext
		parseWindowTitle(tt.title, &ctx)
		if ctx.Channel != tt.channel || ctx.Server != tt.server || ctx.DMName != tt.dm {
			t.Errorf("parseWindowTitle(%q) = channel %q server %q dm %q, want %q %q %q",
				tt.title, ctx.Channel, ctx.Server, ctx.DMName, tt.channel, tt.server, tt.dm)
		}
	}
}

func TestWindowContext(t *testing.T) {
	userArea := elementtest.New("User area", element.RoleGrouping,
		elementtest.New("Unmute", element.RoleButton),
		elementtest.New("Deafen", element.RoleButton),
		elementtest.New("General / My Server", element.RoleStaticText))
	servers := elementtest.New("Servers", element.RoleTreeView,
		elementtest.New("My Server, 3 mentions", element.RoleTreeViewItem),
		elementtest.New("Other Server, new", element.RoleTreeViewItem),
		elementtest.New("Calm Server", element.RoleTreeViewItem))
	alert := elementtest.New("Connection lost, retrying", element.RoleAlert)
	window := chatWindow("#general — My Server — Discord", servers, userArea, alert)

	e := newTestEngine(&fakeSession{foreground: window})
	ctx := e.WindowContext(nil)

	if ctx.Channel != "#general" || ctx.Server != "My Server" {
		t.Errorf("title parse: channel %q server %q", ctx.Channel, ctx.Server)
	}
	if !ctx.Muted {
		t.Error("Muted = false with an Unmute toggle visible")
	}
	if ctx.Deafened {
		t.Error("Deafened = true with only a Deafen toggle visible")
	}
	if ctx.VoiceChannel != "General / My Server" {
		t.Errorf("VoiceChannel = %q", ctx.VoiceChannel)
	}
	if len(ctx.Badges) != 2 || ctx.Badges[0] != "3 mentions" || ctx.Badges[1] != "Other Server: new" {
		t.Errorf("Badges = %v", ctx.Badges)
	}
	if len(ctx.Alerts) != 1 || ctx.Alerts[0] != "Connection lost, retrying" {
		t.Errorf("Alerts = %v", ctx.Alerts)
	}
}

func TestWindowContext_NoWindow(t *testing.T) {
	e := newTestEngine(&fakeSession{})
	ctx := e.WindowContext(nil)
	if ctx.Server != "" || ctx.Channel != "" || ctx.Muted {
		t.Errorf("WindowContext without a window = %+v, want zero value", ctx)
	}
}
