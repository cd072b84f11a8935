package finder

import (
	"regexp"
	"strings"

	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// latencyRe matches latency readouts like "78 ms" or "120ms".
var latencyRe = regexp.MustCompile(`\d+\s*ms`)

// badgeCountRe matches unread badge text like "3 mentions" or "1 unread".
var badgeCountRe = regexp.MustCompile(`\d+\s*(mention|unread|notification)`)

// VoiceInfo describes an active voice connection as read from the user
// area. Empty fields were not found. Nil result means no connection was
// detected at all.
type VoiceInfo struct {
	Latency string   `yaml:"latency,omitempty" json:"latency,omitempty"`
	Status  string   `yaml:"status,omitempty"  json:"status,omitempty"`
	Channel string   `yaml:"channel,omitempty" json:"channel,omitempty"`
	Extras  []string `yaml:"extras,omitempty"  json:"extras,omitempty"`
}

// nonChannelWords disqualify a slash-separated label from being the
// voice channel name.
var nonChannelWords = []string{
	"mute", "deafen", "settings", "profile",
	"camera", "screen", "activity", "soundboard",
}

// VoiceInfo reads voice connection details from the user area's cached
// depth-2 children: latency, status, the "Channel / Server" label and
// extras like noise suppression.
func (e *Engine) VoiceInfo() *VoiceInfo {
	var userAreaName string
	for _, d1 := range e.depth1() {
		if Matches(d1.Name, e.pats.UserArea) {
			userAreaName = d1.Name
			break
		}
	}
	if userAreaName == "" {
		return nil
	}

	info := &VoiceInfo{}
	found := false
	for _, d2 := range e.depth2() {
		if d2.ParentName != userAreaName || d2.Name == "" {
			continue
		}
		lower := strings.ToLower(d2.Name)
		switch {
		case latencyRe.MatchString(lower):
			info.Latency = strings.TrimSpace(d2.Name)
			found = true
		case strings.Contains(lower, "voice") &&
			(strings.Contains(lower, "connected") || strings.Contains(lower, "details")):
			info.Status = strings.TrimSpace(d2.Name)
			found = true
		case strings.Contains(d2.Name, "/") && !containsAny(lower, nonChannelWords):
			info.Channel = strings.TrimSpace(d2.Name)
			found = true
		case containsAny(lower, []string{"noise", "suppression", "krisp", "echo"}):
			info.Extras = append(info.Extras, strings.TrimSpace(d2.Name))
			found = true
		}
	}
	if found {
		return info
	}

	// Some layouts surface the status at depth 1.
	for _, d1 := range e.depth1() {
		lower := strings.ToLower(d1.Name)
		if strings.Contains(lower, "voice connected") || strings.Contains(lower, "voice details") {
			info.Status = strings.TrimSpace(d1.Name)
			return info
		}
	}
	e.log.Debug("voice connection info not found")
	return nil
}

// WindowContext is status information assembled from the window title
// and the tree.
type WindowContext struct {
	Server       string   `yaml:"server,omitempty"        json:"server,omitempty"`
	Channel      string   `yaml:"channel,omitempty"       json:"channel,omitempty"`
	DMName       string   `yaml:"dm_name,omitempty"       json:"dm_name,omitempty"`
	VoiceChannel string   `yaml:"voice_channel,omitempty" json:"voice_channel,omitempty"`
	Muted        bool     `yaml:"muted"                   json:"muted"`
	Deafened     bool     `yaml:"deafened"                json:"deafened"`
	Badges       []string `yaml:"badges,omitempty"        json:"badges,omitempty"`
	Alerts       []string `yaml:"alerts,omitempty"        json:"alerts,omitempty"`
}

// WindowContext gathers server/channel from the window title, mute and
// deafen state from the user area, the voice channel, unread badges on
// servers and any visible alerts.
//
// Mute/deafen are derived from substring heuristics on button labels
// ("unmute" present means currently muted). This mirrors how the client
// labels its toggles and is best-effort, not semantically exact.
func (e *Engine) WindowContext(root element.Handle) WindowContext {
	ctx := WindowContext{}
	if root == nil {
		root = e.session.Foreground()
	}
	if root == nil {
		return ctx
	}

	parseWindowTitle(root.Name(), &ctx)

	// Mute/deafen from the user area's children.
	var userAreaName string
	for _, d1 := range e.depth1() {
		if Matches(d1.Name, e.pats.UserArea) {
			userAreaName = d1.Name
			break
		}
	}
	if userAreaName != "" {
		for _, d2 := range e.depth2() {
			if d2.ParentName != userAreaName || d2.Name == "" {
				continue
			}
			lower := strings.ToLower(d2.Name)
			if strings.Contains(lower, "unmute") || strings.Contains(lower, "muted") {
				ctx.Muted = true
			}
			if strings.Contains(lower, "undeafen") || strings.Contains(lower, "deafened") {
				ctx.Deafened = true
			}
		}
	}

	if info := e.VoiceInfo(); info != nil {
		switch {
		case info.Channel != "":
			ctx.VoiceChannel = info.Channel
		case info.Status != "":
			ctx.VoiceChannel = "Connected"
		}
	}

	// Unread badges on server items.
	if serverList := e.ServerList(); serverList != nil {
		for _, child := range walk.Children(serverList) {
			name := child.Name()
			if name == "" {
				continue
			}
			lower := strings.ToLower(name)
			// Compound labels like "My Server, 3 mentions" or
			// "My Server, new".
			if strings.Contains(name, ", ") {
				parts := strings.Split(name, ", ")
				for _, part := range parts[1:] {
					pl := strings.TrimSpace(strings.ToLower(part))
					if badgeCountRe.MatchString(pl) {
						ctx.Badges = append(ctx.Badges, strings.TrimSpace(part))
					} else if pl == "new" {
						ctx.Badges = append(ctx.Badges, parts[0]+": new")
					}
				}
				continue
			}
			if badgeCountRe.MatchString(lower) {
				ctx.Badges = append(ctx.Badges, strings.TrimSpace(name))
			}
		}
	}

	// Toasts and banners at depth 1.
	for _, d1 := range e.depth1() {
		if d1.Name == "" {
			continue
		}
		if d1.Handle.Role() == element.RoleAlert {
			ctx.Alerts = append(ctx.Alerts, strings.TrimSpace(d1.Name))
		}
	}

	return ctx
}

// parseWindowTitle splits titles of the forms "#channel — Server —
// Discord", "@user — Discord", "Server — Discord" and "Discord" into
// the context fields. Both em-dash and hyphen separators occur.
func parseWindowTitle(title string, ctx *WindowContext) {
	if title == "" {
		return
	}
	cleaned := title
	for _, suffix := range []string{" — Discord", " - Discord"} {
		if strings.HasSuffix(cleaned, suffix) {
			cleaned = strings.TrimSuffix(cleaned, suffix)
			break
		}
	}
	for _, sep := range []string{" — ", " - "} {
		if strings.Contains(cleaned, sep) {
			parts := strings.SplitN(cleaned, sep, 2)
			ctx.Channel = strings.TrimSpace(parts[0])
			if len(parts) > 1 {
				ctx.Server = strings.TrimSpace(parts[1])
			}
			return
		}
	}
	if cleaned == "" || strings.EqualFold(cleaned, "discord") {
		return
	}
	if strings.HasPrefix(cleaned, "@") {
		ctx.DMName = cleaned
	} else {
		ctx.Server = cleaned
	}
}
