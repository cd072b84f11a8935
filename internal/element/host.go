package element

import (
	"fmt"
	"strings"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// hostHandle backs a Handle with the host object model (rod's element
// layer). It is produced when a node arrives from outside the engine's
// own walk, e.g. the focused element or the foreground document.
type hostHandle struct {
	page *rod.Page
	el   *rod.Element
}

// NewHost wraps a host object-model element.
func NewHost(page *rod.Page, el *rod.Element) Handle {
	if el == nil {
		return nil
	}
	return &hostHandle{page: page, el: el}
}

// simplifiedMaxDepth bounds how far unnamed wrapper flattening descends.
const simplifiedMaxDepth = 3

// maxSimplified caps the simplified child list of a single node.
const maxSimplified = 512

func (h *hostHandle) Name() string {
	for _, attr := range []string{"aria-label", "title", "alt", "placeholder"} {
		if v := h.attr(attr); v != "" {
			return v
		}
	}
	// Leaf elements with no labelling attribute are named by their
	// rendered text. Containers are not: their text would be the whole
	// subtree's worth.
	if h.ChildCount() == 0 {
		if text, err := h.el.Text(); err == nil {
			return strings.TrimSpace(text)
		}
	}
	return ""
}

func (h *hostHandle) Role() Role {
	if v := h.attr("role"); v != "" {
		return MapRole(v)
	}
	node, err := h.el.Describe(0, false)
	if err != nil || node == nil {
		return RoleUnknown
	}
	return roleForTag(node.LocalName)
}

func (h *hostHandle) States() StateSet {
	var set StateSet
	if h.attr("disabled") != "" || h.attr("aria-disabled") == "true" {
		set = set.With(StateUnavailable)
	}
	if h.attr("tabindex") != "" {
		set = set.With(StateFocusable)
		return set
	}
	node, err := h.el.Describe(0, false)
	if err != nil || node == nil {
		return set
	}
	switch node.LocalName {
	case "a", "button", "input", "textarea", "select":
		set = set.With(StateFocusable)
	}
	return set
}

func (h *hostHandle) Value() string {
	v, err := h.el.Property("value")
	if err != nil {
		return ""
	}
	if s, ok := v.Val().(string); ok {
		return s
	}
	return ""
}

func (h *hostHandle) Description() string { return h.attr("aria-description") }
func (h *hostHandle) ClassName() string   { return h.attr("class") }
func (h *hostHandle) FrameworkID() string { return h.attr("id") }

func (h *hostHandle) ChildCount() int {
	node, err := h.el.Describe(0, false)
	if err != nil || node == nil || node.ChildNodeCount == nil {
		return 0
	}
	return *node.ChildNodeCount
}

func (h *hostHandle) Parent() Handle {
	parent, err := h.el.Parent()
	if err != nil || parent == nil {
		return nil
	}
	return &hostHandle{page: h.page, el: parent}
}

func (h *hostHandle) FirstChild() Handle {
	kids := h.elementChildren()
	if len(kids) == 0 {
		return nil
	}
	return kids[0]
}

func (h *hostHandle) NextSibling() Handle {
	next, err := h.el.Next()
	if err != nil || next == nil {
		return nil
	}
	return &hostHandle{page: h.page, el: next}
}

// SimplifiedChildren flattens unnamed structural wrappers: a child that
// has no accessible name, a generic grouping role, and children of its
// own is replaced by its children, up to simplifiedMaxDepth levels. This
// mirrors the host environment's simplified traversal and avoids one
// round trip per wrapper div for zero semantic value.
func (h *hostHandle) SimplifiedChildren() []Handle {
	var out []Handle
	h.appendSimplified(&out, h.elementChildren(), 0)
	return out
}

func (h *hostHandle) appendSimplified(out *[]Handle, kids []Handle, depth int) {
	for _, kid := range kids {
		if len(*out) >= maxSimplified {
			return
		}
		hk, ok := kid.(*hostHandle)
		if !ok || depth >= simplifiedMaxDepth || !hk.structuralWrapper() {
			*out = append(*out, kid)
			continue
		}
		hk.appendSimplified(out, hk.elementChildren(), depth+1)
	}
}

// structuralWrapper reports whether the node is an unnamed generic
// container that the simplified view should collapse away.
func (h *hostHandle) structuralWrapper() bool {
	if h.attr("aria-label") != "" || h.attr("role") != "" {
		return false
	}
	node, err := h.el.Describe(0, false)
	if err != nil || node == nil {
		return false
	}
	if node.LocalName != "div" && node.LocalName != "span" {
		return false
	}
	return node.ChildNodeCount != nil && *node.ChildNodeCount > 0
}

func (h *hostHandle) Focus() error { return h.el.Focus() }

func (h *hostHandle) Invoke() error {
	return h.el.Click(proto.InputMouseButtonLeft, 1)
}

func (h *hostHandle) Same(other Handle) bool {
	o, ok := other.(*hostHandle)
	if !ok || o == nil {
		return false
	}
	if h.el == o.el {
		return true
	}
	return h.el.Object != nil && o.el.Object != nil &&
		h.el.Object.ObjectID == o.el.Object.ObjectID
}

// elementChildren returns the element-node children, skipping text and
// comment nodes.
func (h *hostHandle) elementChildren() []Handle {
	node, err := h.el.Describe(1, false)
	if err != nil || node == nil {
		return nil
	}
	var out []Handle
	for _, child := range node.Children {
		if child == nil || child.NodeType != 1 {
			continue
		}
		el, err := h.page.ElementFromNode(child)
		if err != nil {
			continue
		}
		out = append(out, &hostHandle{page: h.page, el: el})
	}
	return out
}

func (h *hostHandle) attr(name string) string {
	v, err := h.el.Attribute(name)
	if err != nil || v == nil {
		return ""
	}
	return *v
}

// roleForTag maps an HTML tag name to the engine taxonomy for elements
// that carry no explicit role attribute.
func roleForTag(tag string) Role {
	switch tag {
	case "button":
		return RoleButton
	case "a":
		return RoleLink
	case "input", "textarea":
		return RoleEdit
	case "select":
		return RoleComboBox
	case "img", "svg":
		return RoleGraphic
	case "ul", "ol":
		return RoleList
	case "li":
		return RoleListItem
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return RoleHeading
	case "hr":
		return RoleSeparator
	case "progress":
		return RoleProgressBar
	case "table":
		return RoleTable
	case "article":
		return RoleArticle
	case "section":
		return RoleSection
	case "nav", "aside", "main", "header", "footer":
		return RolePane
	case "body", "html":
		return RoleDocument
	case "div", "span", "form":
		return RoleGrouping
	case "p", "label":
		return RoleStaticText
	default:
		return RoleUnknown
	}
}

// String implements fmt.Stringer for debug logs.
func (h *hostHandle) String() string {
	return fmt.Sprintf("<host %s %q>", h.Role(), truncate(h.Name(), 40))
}

func (h *rawHandle) String() string {
	return fmt.Sprintf("<raw %s %q>", h.Role(), truncate(h.Name(), 40))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
