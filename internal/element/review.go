package element

import "github.com/go-rod/rod/lib/proto"

// BringIntoView positions the host environment's review point on h by
// scrolling it into the viewport, without moving keyboard focus. Returns
// false for handles with no backing remote node (test fakes included).
func BringIntoView(h Handle) bool {
	switch t := h.(type) {
	case *hostHandle:
		return t.el.ScrollIntoView() == nil
	case *rawHandle:
		if t.node == nil || t.node.BackendDOMNodeID == 0 {
			return false
		}
		err := proto.DOMScrollIntoViewIfNeeded{
			BackendNodeID: t.node.BackendDOMNodeID,
		}.Call(t.page)
		return err == nil
	default:
		return false
	}
}
