package finder

import (
	"strings"

	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// Area is one navigable major region.
type Area struct {
	Label  string
	Handle element.Handle
}

// Areas locates the major regions in one pass over the caches: server
// list and user area at depth 1, then channel list, messages and members
// inside the server landmark. The current server's own container is
// included under its server name. Regions come back in a fixed order.
func (e *Engine) Areas() []Area {
	type def struct {
		label    string
		patterns []string
	}
	outer := []def{
		{"Server list", e.pats.Servers},
		{"User area", e.pats.UserArea},
	}

	found := map[string]element.Handle{}
	var serverLandmark element.Handle
	var serverLabel string

	for _, d1 := range e.depth1() {
		if d1.Name == "" {
			continue
		}
		if strings.Contains(strings.ToLower(d1.Name), "(server)") {
			serverLandmark = d1.Handle
			serverLabel = strings.TrimSpace(strings.Replace(d1.Name, " (server)", "", 1))
		}
		for _, d := range outer {
			if found[d.label] == nil && Matches(d1.Name, d.patterns) {
				found[d.label] = d1.Handle
			}
		}
	}
	for _, d2 := range e.depth2() {
		for _, d := range outer {
			if found[d.label] == nil && Matches(d2.Name, d.patterns) {
				found[d.label] = d2.Handle
			}
		}
	}

	inner := []def{
		{"Channel list", e.pats.Channels},
		{"Messages", e.pats.Messages},
		{"Members", e.pats.Members},
	}
	if serverLandmark != nil {
		serverName := serverLandmark.Name()
		for _, d2 := range e.depth2() {
			if d2.ParentName != serverName {
				continue
			}
			for _, d := range inner {
				if found[d.label] == nil && Matches(d2.Name, d.patterns) {
					found[d.label] = d2.Handle
				}
			}
		}
		// Anything still missing gets one live scan of the landmark.
		var missing []def
		for _, d := range inner {
			if found[d.label] == nil {
				missing = append(missing, d)
			}
		}
		if len(missing) > 0 {
			for _, child := range walk.Children(serverLandmark) {
				name := child.Name()
				if name == "" {
					continue
				}
				for _, d := range missing {
					if found[d.label] == nil && Matches(name, d.patterns) {
						found[d.label] = child
					}
				}
			}
		}
	}

	var out []Area
	for _, label := range []string{"Server list", "Channel list", "Messages", "Members", "User area"} {
		if h := found[label]; h != nil {
			out = append(out, Area{Label: label, Handle: h})
		}
		// The server's own container slots in right after the server
		// list.
		if label == "Server list" && serverLandmark != nil {
			if serverLabel == "" {
				serverLabel = "Server"
			}
			out = append(out, Area{Label: serverLabel, Handle: serverLandmark})
		}
	}
	return out
}
