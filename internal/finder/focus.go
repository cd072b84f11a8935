package finder

import (
	"chatnav/internal/element"
	"chatnav/internal/walk"
)

// focusChildScan bounds how many children are checked for focusability,
// to avoid runaway cost on huge containers.
const focusChildScan = 20

// FocusElement moves input focus to h or a focusable stand-in for it.
// Landmark containers are structural and often cannot take keyboard
// focus directly, so the fallback order is: the handle itself when it
// reports focusable; the first focusable of its first children; the
// host review cursor; a forced focus call, accepting whatever the remote
// API does. Returns whether focus (or the review cursor) moved.
func (e *Engine) FocusElement(h element.Handle) bool {
	if h == nil {
		return false
	}

	if h.States().Has(element.StateFocusable) {
		if err := h.Focus(); err == nil {
			return true
		}
	}

	for i, child := range walk.Children(h) {
		if i >= focusChildScan {
			break
		}
		if child.States().Has(element.StateFocusable) {
			if err := child.Focus(); err == nil {
				return true
			}
		}
	}

	if e.session.ReviewTarget(h) {
		return true
	}

	return h.Focus() == nil
}
