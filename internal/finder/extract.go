package finder

import (
	"strings"

	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// maxButtons caps the Buttons listing.
const maxButtons = 50

// Messages returns the message items of list, or of the located message
// list when list is nil. Unnamed structural children are skipped unless
// they carry a message-shaped role. A resolved but empty list yields an
// empty non-nil slice; nil means the list itself was not found.
func (e *Engine) Messages(list element.Handle) []element.Handle {
	if list == nil {
		list = e.MessageList()
	}
	if list == nil {
		return nil
	}
	itemRoles := roles(element.RoleListItem, element.RoleGrouping,
		element.RoleArticle, element.RoleTreeViewItem)

	out := []element.Handle{}
	for _, child := range walk.Children(list) {
		if itemRoles[child.Role()] || child.Name() != "" {
			out = append(out, child)
		}
	}
	return out
}

// MessageContent assembles the readable text of one message item: its
// own name, or the concatenated names/values of its children.
func MessageContent(msg element.Handle) string {
	if msg == nil {
		return ""
	}
	if name := msg.Name(); name != "" {
		return name
	}
	var parts []string
	for _, child := range walk.Children(msg) {
		if name := child.Name(); name != "" {
			parts = append(parts, name)
		} else if val := child.Value(); val != "" {
			parts = append(parts, val)
		}
	}
	if len(parts) == 0 {
		return "(empty message)"
	}
	return strings.Join(parts, " ")
}

// ServerItems returns the server entries of the server sidebar.
func (e *Engine) ServerItems(list element.Handle) []element.Handle {
	if list == nil {
		list = e.ServerList()
	}
	if list == nil {
		return nil
	}
	itemRoles := roles(element.RoleTreeViewItem, element.RoleListItem,
		element.RoleButton, element.RoleLink)

	var out []element.Handle
	for _, child := range walk.Children(list) {
		if itemRoles[child.Role()] || child.Name() != "" {
			out = append(out, child)
		}
	}
	return out
}

// badgePatterns are child labels of a server item that are not voice
// participants.
var badgePatterns = []string{"new", "mention", "mentions", "unread", "level"}

// ServerVoiceParticipants lists voice participant names shown under a
// server item. The client lists participants as plain username children;
// badges, counts and the server's own name are filtered out.
func ServerVoiceParticipants(server element.Handle) []string {
	serverName := strings.ToLower(server.Name())

	var out []string
	for _, child := range walk.Children(server) {
		name := child.Name()
		lower := strings.TrimSpace(strings.ToLower(name))
		if lower == "" || len(lower) < 2 {
			continue
		}
		if lower == serverName || strings.HasPrefix(serverName, lower) {
			continue
		}
		if containsAny(lower, badgePatterns) {
			continue
		}
		// Counts like "7 of 128".
		if isDigitsAndOf(lower) {
			continue
		}
		out = append(out, name)
	}
	return out
}

// HasVoiceActivity reports whether a server item shows voice
// participants.
func HasVoiceActivity(server element.Handle) bool {
	return len(ServerVoiceParticipants(server)) > 0
}

// VoiceParticipants lists the participants of an expanded voice channel,
// annotated with muted/deafened status read from their child labels.
// The status derivation is a best-effort substring heuristic over
// sibling button labels and may drift across client versions.
func VoiceParticipants(channel element.Handle) []string {
	itemRoles := roles(element.RoleListItem, element.RoleButton, element.RoleTreeViewItem)

	var out []string
	for _, child := range walk.Children(channel) {
		name := child.Name()
		if name == "" {
			continue
		}
		if !itemRoles[child.Role()] {
			continue
		}
		parts := []string{name}
		for _, sub := range walk.Children(child) {
			lower := strings.ToLower(sub.Name())
			if strings.Contains(lower, "mute") {
				parts = append(parts, "muted")
			} else if strings.Contains(lower, "deafen") {
				parts = append(parts, "deafened")
			}
		}
		out = append(out, strings.Join(parts, " "))
	}
	return out
}

// UnreadMarkerIndex returns the index of the unread separator inside the
// message list, or -1.
func (e *Engine) UnreadMarkerIndex(list element.Handle) int {
	if list == nil {
		list = e.MessageList()
	}
	if list == nil {
		return -1
	}
	markerRoles := roles(element.RoleSeparator, element.RoleGrouping,
		element.RoleStaticText, element.RoleHeading)

	for i, child := range walk.Children(list) {
		name := strings.ToLower(child.Name())
		if name == "" {
			continue
		}
		if strings.Contains(name, "new") || strings.Contains(name, "unread") {
			if markerRoles[child.Role()] {
				return i
			}
		}
	}
	return -1
}

// Buttons lists named controls from the depth-1 cache and the server
// landmark, capped at maxButtons.
func (e *Engine) Buttons() []Area {
	buttonRoles := roles(element.RoleButton, element.RoleToggleButton, element.RoleSplitButton)
	seen := map[string]bool{}
	var out []Area

	for _, d1 := range e.depth1() {
		if d1.Name == "" || seen[d1.Name] {
			continue
		}
		if buttonRoles[d1.Handle.Role()] {
			seen[d1.Name] = true
			out = append(out, Area{Label: d1.Name, Handle: d1.Handle})
		}
	}
	if server := e.d1Landmark("(server)"); server != nil {
		for _, child := range walk.Children(server) {
			if len(out) >= maxButtons {
				break
			}
			name := child.Name()
			if name == "" || seen[name] {
				continue
			}
			if buttonRoles[child.Role()] {
				seen[name] = true
				out = append(out, Area{Label: name, Handle: child})
			}
		}
	}
	return out
}

// ChannelTopic returns the channel topic or description text, if shown.
func (e *Engine) ChannelTopic() string {
	h := e.findByName([]string{"topic", "description"}, nil, nil, 8)
	if h == nil {
		return ""
	}
	return h.Name()
}

// isDigitsAndOf reports strings that are only digits, spaces and the
// word "of", e.g. "7 of 128".
func isDigitsAndOf(s string) bool {
	stripped := strings.ReplaceAll(strings.ReplaceAll(s, " ", ""), "of", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
