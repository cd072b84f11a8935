package element

import (
	"fmt"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// rawHandle backs a Handle with direct accessibility-domain protocol
// calls. It is produced when the engine walks the remote tree itself
// rather than through the host object model.
type rawHandle struct {
	page *rod.Page
	node *proto.AccessibilityAXNode
}

// NewRaw wraps a raw accessibility node. The node must have been fetched
// from page; only its identity is retained, every accessor re-reads the
// remote node.
func NewRaw(page *rod.Page, node *proto.AccessibilityAXNode) Handle {
	if node == nil {
		return nil
	}
	return &rawHandle{page: page, node: node}
}

// fresh re-fetches the node's current payload. Returns nil when the
// remote node no longer exists.
func (h *rawHandle) fresh() *proto.AccessibilityAXNode {
	if h.node == nil {
		return nil
	}
	if h.node.BackendDOMNodeID == 0 {
		return h.node
	}
	res, err := proto.AccessibilityGetAXNodeAndAncestors{
		BackendNodeID: h.node.BackendDOMNodeID,
	}.Call(h.page)
	if err != nil || len(res.Nodes) == 0 {
		return nil
	}
	return res.Nodes[0]
}

func (h *rawHandle) Name() string {
	n := h.fresh()
	if n == nil {
		return ""
	}
	return axValueString(n.Name)
}

func (h *rawHandle) Role() Role {
	n := h.fresh()
	if n == nil {
		return RoleUnknown
	}
	return MapRole(axValueString(n.Role))
}

func (h *rawHandle) States() StateSet {
	var set StateSet
	n := h.fresh()
	if n == nil {
		return set
	}
	for _, p := range n.Properties {
		if p == nil || p.Value == nil {
			continue
		}
		switch p.Name {
		case proto.AccessibilityAXPropertyNameFocusable:
			if p.Value.Value.Bool() {
				set = set.With(StateFocusable)
			}
		case proto.AccessibilityAXPropertyNameDisabled:
			if p.Value.Value.Bool() {
				set = set.With(StateUnavailable)
			}
		}
	}
	return set
}

func (h *rawHandle) Value() string {
	n := h.fresh()
	if n == nil {
		return ""
	}
	return axValueString(n.Value)
}

func (h *rawHandle) Description() string {
	n := h.fresh()
	if n == nil {
		return ""
	}
	return axValueString(n.Description)
}

func (h *rawHandle) ClassName() string   { return h.domAttribute("class") }
func (h *rawHandle) FrameworkID() string { return h.domAttribute("id") }

// ChildCount reads the child-id list already carried by the node
// payload. It is the one accessor that avoids a round trip.
func (h *rawHandle) ChildCount() int {
	if h.node == nil {
		return 0
	}
	return len(h.node.ChildIDs)
}

func (h *rawHandle) Parent() Handle {
	if h.node == nil || h.node.BackendDOMNodeID == 0 {
		return nil
	}
	res, err := proto.AccessibilityGetAXNodeAndAncestors{
		BackendNodeID: h.node.BackendDOMNodeID,
	}.Call(h.page)
	if err != nil || len(res.Nodes) < 2 {
		return nil
	}
	return &rawHandle{page: h.page, node: res.Nodes[1]}
}

func (h *rawHandle) FirstChild() Handle {
	kids := h.childNodes()
	if len(kids) == 0 {
		return nil
	}
	return &rawHandle{page: h.page, node: kids[0]}
}

func (h *rawHandle) NextSibling() Handle {
	if h.node == nil {
		return nil
	}
	parent, ok := h.Parent().(*rawHandle)
	if !ok || parent == nil {
		return nil
	}
	siblings := parent.childNodes()
	for i, s := range siblings {
		if s.NodeID == h.node.NodeID && i+1 < len(siblings) {
			return &rawHandle{page: h.page, node: siblings[i+1]}
		}
	}
	return nil
}

// SimplifiedChildren returns nil: the raw representation has no
// simplified view, so enumeration follows first-child/next-sibling.
func (h *rawHandle) SimplifiedChildren() []Handle { return nil }

func (h *rawHandle) Focus() error {
	if h.node == nil || h.node.BackendDOMNodeID == 0 {
		return fmt.Errorf("focus: node has no backing DOM node")
	}
	return proto.DOMFocus{BackendNodeID: h.node.BackendDOMNodeID}.Call(h.page)
}

func (h *rawHandle) Invoke() error {
	if h.node == nil || h.node.BackendDOMNodeID == 0 {
		return fmt.Errorf("invoke: node has no backing DOM node")
	}
	res, err := proto.DOMResolveNode{BackendNodeID: h.node.BackendDOMNodeID}.Call(h.page)
	if err != nil {
		return fmt.Errorf("invoke: resolve node: %w", err)
	}
	_, err = proto.RuntimeCallFunctionOn{
		FunctionDeclaration: "function() { this.click() }",
		ObjectID:            res.Object.ObjectID,
	}.Call(h.page)
	return err
}

func (h *rawHandle) Same(other Handle) bool {
	o, ok := other.(*rawHandle)
	if !ok || o == nil || h.node == nil || o.node == nil {
		return false
	}
	return h.node.NodeID == o.node.NodeID
}

// childNodes fetches the node's current children in order.
func (h *rawHandle) childNodes() []*proto.AccessibilityAXNode {
	if h.node == nil {
		return nil
	}
	res, err := proto.AccessibilityGetChildAXNodes{ID: h.node.NodeID}.Call(h.page)
	if err != nil {
		return nil
	}
	return res.Nodes
}

func (h *rawHandle) domAttribute(name string) string {
	if h.node == nil || h.node.BackendDOMNodeID == 0 {
		return ""
	}
	res, err := proto.DOMDescribeNode{BackendNodeID: h.node.BackendDOMNodeID}.Call(h.page)
	if err != nil || res.Node == nil {
		return ""
	}
	attrs := res.Node.Attributes
	for i := 0; i+1 < len(attrs); i += 2 {
		if attrs[i] == name {
			return attrs[i+1]
		}
	}
	return ""
}

// axValueString extracts a string from an accessibility value of any
// underlying type.
func axValueString(v *proto.AccessibilityAXValue) string {
	if v == nil {
		return ""
	}
	return jsonString(v.Value)
}

// jsonString renders a protocol JSON value as text, "" for null.
func jsonString(j gson.JSON) string {
	switch val := j.Val().(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
