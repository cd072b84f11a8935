// Package walk traverses the remote accessibility tree: single-level
// child enumeration and a time- and depth-bounded breadth-first walk.
package walk

import "chatnav/internal/element"

// maxSiblings is a hard cap on enumerated children per node. It is a
// second line of defense against corrupt sibling chains, independent of
// the visited-set check, because identity comparison on remote handles
// can itself be unreliable.
const maxSiblings = 512

// Children yields exactly one level of h's children, in order.
//
// Handles with a simplified view use it, because the raw traversal
// returns large numbers of unnamed structural wrappers that waste round
// trips. Other handles follow first-child/next-sibling links. A sibling
// cycle or the sibling cap ends enumeration as if the level simply
// ended.
func Children(h element.Handle) []element.Handle {
	if h == nil {
		return nil
	}
	if kids := h.SimplifiedChildren(); kids != nil {
		if len(kids) > maxSiblings {
			kids = kids[:maxSiblings]
		}
		return kids
	}

	var out []element.Handle
	child := h.FirstChild()
	for child != nil && len(out) < maxSiblings {
		if seen(out, child) {
			break
		}
		out = append(out, child)
		child = child.NextSibling()
	}
	return out
}

// seen reports whether h identity-matches any prior sibling.
func seen(prior []element.Handle, h element.Handle) bool {
	for _, p := range prior {
		if p.Same(h) {
			return true
		}
	}
	return false
}
