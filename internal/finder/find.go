package finder

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// RoleSet is the set of roles a finder accepts for a match.
type RoleSet map[element.Role]bool

// roles builds a RoleSet.
func roles(rs ...element.Role) RoleSet {
	set := make(RoleSet, len(rs))
	for _, r := range rs {
		set[r] = true
	}
	return set
}

// messageRoles are containers that can plausibly hold the chat message
// area.
func messageRoles() RoleSet {
	return roles(element.RoleList, element.RoleGrouping, element.RoleTreeView,
		element.RoleDocument, element.RoleSection, element.RoleApplication)
}

// editRoles are roles the message input can take. The input is a rich
// text surface, so a document role is as plausible as an edit role.
func editRoles() RoleSet {
	return roles(element.RoleEdit, element.RoleDocument)
}

// strategy is one step of a finder cascade. It returns nil to fall
// through to the next strategy.
type strategy func() element.Handle

// find runs strategies in order and returns the first hit. On full miss
// it emits the engine's one diagnostic line naming the region; a miss is
// a nil result, never an error.
func (e *Engine) find(region string, strategies ...strategy) element.Handle {
	for _, s := range strategies {
		if h := s(); h != nil {
			return h
		}
	}
	e.log.Debug("chat region not found; the client's UI structure may have changed",
		zap.String("region", region))
	return nil
}

// findByName searches level by level below root for the first descendant
// whose name matches patterns, up to maxDepth levels.
//
// The role accessor is only invoked after a name match; most siblings
// never match by name and the role round trip would be wasted on all of
// them. A name match with the wrong role is remembered as a fallback,
// preferring a role-correct match found later over a role-incorrect one
// found earlier.
func (e *Engine) findByName(patterns []string, root element.Handle, allowed RoleSet, maxDepth int) element.Handle {
	if root == nil {
		root = e.ContentRoot(nil)
	}
	if root == nil {
		return nil
	}
	opts := walkDefaults(e.walkOpt)
	start := opts.Now()

	var fallback element.Handle
	level := []element.Handle{root}

	for depth := 0; depth < maxDepth; depth++ {
		if opts.Now().Sub(start) > opts.Timeout {
			break
		}
		var next []element.Handle
		for _, parent := range level {
			if opts.Now().Sub(start) > opts.Timeout {
				break
			}
			for _, child := range walk.Children(parent) {
				if Matches(child.Name(), patterns) {
					if len(allowed) == 0 {
						return child
					}
					if allowed[child.Role()] {
						return child
					}
					if fallback == nil {
						fallback = child
					}
				}
				next = append(next, child)
			}
		}
		if fallback != nil {
			return fallback
		}
		level = next
		if len(level) == 0 {
			break
		}
	}
	return fallback
}

// walkDefaults fills the walk option defaults without touching the
// stored options.
func walkDefaults(o walk.Options) walk.Options {
	if o.Timeout == 0 {
		o.Timeout = walk.DefaultTimeout
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// ServerList finds the server navigation sidebar.
func (e *Engine) ServerList() element.Handle {
	return e.find("server list",
		func() element.Handle { return e.d2FindName(e.pats.Servers) },
	)
}

// ChannelList finds the channel sidebar. It sits inside the "(server)"
// landmark when a server is open.
func (e *Engine) ChannelList() element.Handle {
	return e.find("channel list",
		func() element.Handle { return e.d2FindName(e.pats.Channels) },
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			return e.findByName(e.pats.Channels, server, nil, 4)
		},
	)
}

// MessageList finds the chat message area, rejecting sidebar navigation
// entries like "Direct Messages" via the exclusion list.
func (e *Engine) MessageList() element.Handle {
	msgRoles := messageRoles()

	return e.find("message list",
		// Depth-2 entries under any named non-leaf depth-1 container.
		func() element.Handle {
			for _, d1 := range e.depth1() {
				if d1.Name == "" || d1.Handle.Role().Leaf() {
					continue
				}
				for _, d2 := range e.depth2() {
					if d2.ParentName != d1.Name {
						continue
					}
					if MatchesWithExclusion(d2.Name, e.pats.Messages, e.pats.MessageExclude) &&
						msgRoles[d2.Handle.Role()] {
						return d2.Handle
					}
				}
			}
			return nil
		},
		// Deeper scan inside the server landmark.
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			return e.excludedFind(e.pats.Messages, server, msgRoles, 5)
		},
		// Deeper scan inside every other plausible depth-1 container.
		func() element.Handle {
			for _, d1 := range e.depth1() {
				if d1.Name == "" || d1.Handle.Role().Leaf() {
					continue
				}
				lower := strings.ToLower(d1.Name)
				if containsAny(lower, lowered(e.pats.MessageExclude)) {
					continue
				}
				if Matches(d1.Name, e.pats.Servers) {
					continue
				}
				if h := e.excludedFind(e.pats.Messages, d1.Handle, msgRoles, 4); h != nil {
					return h
				}
			}
			return nil
		},
		// Cache entries directly, with role and exclusion filtering.
		func() element.Handle {
			for _, d1 := range e.depth1() {
				if MatchesWithExclusion(d1.Name, e.pats.Messages, e.pats.MessageExclude) &&
					msgRoles[d1.Handle.Role()] {
					return d1.Handle
				}
			}
			for _, d2 := range e.depth2() {
				if MatchesWithExclusion(d2.Name, e.pats.Messages, e.pats.MessageExclude) &&
					msgRoles[d2.Handle.Role()] {
					return d2.Handle
				}
			}
			return nil
		},
	)
}

// excludedFind is findByName with the message exclusion list applied to
// the result.
func (e *Engine) excludedFind(patterns []string, root element.Handle, allowed RoleSet, maxDepth int) element.Handle {
	h := e.findByName(patterns, root, allowed, maxDepth)
	if h == nil {
		return nil
	}
	if containsAny(strings.ToLower(h.Name()), lowered(e.pats.MessageExclude)) {
		return nil
	}
	return h
}

// MessageInput finds the chat input box: an editable surface inside the
// "(channel)" landmark named like "Message #general" or "Message @user".
func (e *Engine) MessageInput() element.Handle {
	edit := editRoles()

	return e.find("message input",
		// Cache hit under the (channel) landmark.
		func() element.Handle {
			if e.d1Landmark("(channel)") == nil {
				return nil
			}
			for _, d2 := range e.depth2() {
				if !strings.Contains(strings.ToLower(d2.ParentName), "(channel)") {
					continue
				}
				if Matches(d2.Name, e.pats.MessageInput) && edit[d2.Handle.Role()] {
					return d2.Handle
				}
			}
			return nil
		},
		// Deeper scans inside the (channel) landmark.
		func() element.Handle {
			channel := e.d1Landmark("(channel)")
			if channel == nil {
				return nil
			}
			if h := e.findByName(e.pats.MessageInput, channel, edit, 5); h != nil {
				return h
			}
			return e.focusableEdit(channel, edit, false)
		},
		// Same inside the (server) landmark.
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			if h := e.findByName(e.pats.MessageInput, server, edit, 5); h != nil {
				return h
			}
			return e.focusableEdit(server, edit, false)
		},
		// Any depth-2 entry by name and role.
		func() element.Handle {
			for _, d2 := range e.depth2() {
				if Matches(d2.Name, e.pats.MessageInput) && edit[d2.Handle.Role()] {
					return d2.Handle
				}
			}
			return nil
		},
		// Last resort: any focusable edit surface that isn't a search
		// box.
		func() element.Handle {
			return e.focusableEdit(e.ContentRoot(nil), edit, true)
		},
	)
}

// focusableEdit walks below root for the first focusable element whose
// role is in allowed. With skipSearch, names containing "search" are
// rejected.
func (e *Engine) focusableEdit(root element.Handle, allowed RoleSet, skipSearch bool) element.Handle {
	if root == nil {
		return nil
	}
	opts := e.walkOpt
	opts.MaxDepth = 5
	opts.Timeout = 5 * time.Second
	for h := range walk.Descendants(root, opts) {
		if !allowed[h.Role()] {
			continue
		}
		if !h.States().Has(element.StateFocusable) {
			continue
		}
		if skipSearch && strings.Contains(strings.ToLower(h.Name()), "search") {
			continue
		}
		return h
	}
	return nil
}

// MembersList finds the member sidebar.
func (e *Engine) MembersList() element.Handle {
	return e.find("members list",
		func() element.Handle { return e.d2FindName(e.pats.Members) },
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			return e.findByName(e.pats.Members, server, nil, 4)
		},
	)
}

// UserArea finds the user status and settings panel.
func (e *Engine) UserArea() element.Handle {
	return e.find("user area",
		func() element.Handle { return e.d2FindName(e.pats.UserArea) },
	)
}

// ActiveNow finds the "Active Now" panel on the friends page.
func (e *Engine) ActiveNow() element.Handle {
	return e.find("active now",
		func() element.Handle { return e.d2FindName(e.pats.ActiveNow) },
		func() element.Handle {
			for _, d1 := range e.depth1() {
				if d1.Name == "" || d1.Handle.Role().Leaf() {
					continue
				}
				if h := e.findByName(e.pats.ActiveNow, d1.Handle, nil, 3); h != nil {
					return h
				}
			}
			return nil
		},
	)
}

// buttonByName finds a named control: depth-1 cache first, then a
// bounded search inside the server landmark.
func (e *Engine) buttonByName(region string, patterns []string) element.Handle {
	return e.find(region,
		func() element.Handle { return e.d1FindName(patterns) },
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			return e.findByName(patterns, server, nil, 4)
		},
	)
}

// DisconnectButton finds the voice disconnect control.
func (e *Engine) DisconnectButton() element.Handle {
	return e.buttonByName("disconnect button", e.pats.Disconnect)
}

// PinnedButton finds the pinned-messages toolbar control.
func (e *Engine) PinnedButton() element.Handle {
	return e.buttonByName("pinned messages button", e.pats.Pinned)
}

// ThreadsButton finds the threads toolbar control.
func (e *Engine) ThreadsButton() element.Handle {
	return e.buttonByName("threads button", e.pats.Threads)
}

// TypingIndicator finds the "... is typing" live region.
func (e *Engine) TypingIndicator() element.Handle {
	return e.find("typing indicator",
		func() element.Handle { return e.d1FindName([]string{"typing"}) },
		func() element.Handle {
			server := e.d1Landmark("(server)")
			if server == nil {
				return nil
			}
			return e.findByName([]string{"typing"}, server, nil, 4)
		},
	)
}

// lowered returns the patterns lower-cased.
func lowered(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = strings.ToLower(p)
	}
	return out
}
