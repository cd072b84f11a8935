package element

import "strings"

// Role is the engine's closed role taxonomy. The much larger space of
// native role codes reported by the remote tree is mapped into it; any
// unmapped code becomes RoleUnknown, never an error.
type Role int

const (
	RoleUnknown Role = iota
	RoleButton
	RoleCheckBox
	RoleComboBox
	RoleEdit
	RoleLink
	RoleGraphic
	RoleListItem
	RoleList
	RoleMenu
	RoleMenuBar
	RoleMenuItem
	RoleProgressBar
	RoleRadioButton
	RoleScrollBar
	RoleSlider
	RoleStatusBar
	RoleTabControl
	RoleTab
	RoleStaticText
	RoleToolBar
	RoleToolTip
	RoleTreeView
	RoleTreeViewItem
	RoleGrouping
	RoleTable
	RoleDocument
	RoleSplitButton
	RoleToggleButton
	RoleWindow
	RolePane
	RoleTitleBar
	RoleSeparator
	RoleHeading
	RoleSection
	RoleApplication
	RoleAlert
	RoleArticle
)

var roleLabels = map[Role]string{
	RoleUnknown:      "UNKNOWN",
	RoleButton:       "BUTTON",
	RoleCheckBox:     "CHECKBOX",
	RoleComboBox:     "COMBOBOX",
	RoleEdit:         "EDIT",
	RoleLink:         "LINK",
	RoleGraphic:      "GRAPHIC",
	RoleListItem:     "LISTITEM",
	RoleList:         "LIST",
	RoleMenu:         "MENU",
	RoleMenuBar:      "MENUBAR",
	RoleMenuItem:     "MENUITEM",
	RoleProgressBar:  "PROGRESSBAR",
	RoleRadioButton:  "RADIOBUTTON",
	RoleScrollBar:    "SCROLLBAR",
	RoleSlider:       "SLIDER",
	RoleStatusBar:    "STATUSBAR",
	RoleTabControl:   "TABCONTROL",
	RoleTab:          "TAB",
	RoleStaticText:   "STATICTEXT",
	RoleToolBar:      "TOOLBAR",
	RoleToolTip:      "TOOLTIP",
	RoleTreeView:     "TREEVIEW",
	RoleTreeViewItem: "TREEVIEWITEM",
	RoleGrouping:     "GROUPING",
	RoleTable:        "TABLE",
	RoleDocument:     "DOCUMENT",
	RoleSplitButton:  "SPLITBUTTON",
	RoleToggleButton: "TOGGLEBUTTON",
	RoleWindow:       "WINDOW",
	RolePane:         "PANE",
	RoleTitleBar:     "TITLEBAR",
	RoleSeparator:    "SEPARATOR",
	RoleHeading:      "HEADING",
	RoleSection:      "SECTION",
	RoleApplication:  "APPLICATION",
	RoleAlert:        "ALERT",
	RoleArticle:      "ARTICLE",
}

// String returns a human-readable role label like "BUTTON".
func (r Role) String() string {
	if s, ok := roleLabels[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Leaf reports whether the role is known to never contain structurally
// useful descendants. Children of leaf-role nodes are pruned from tree
// walks because fetching them wastes a round trip per node.
func (r Role) Leaf() bool {
	switch r {
	case RoleButton, RoleLink, RoleStaticText, RoleToggleButton,
		RoleSplitButton, RoleGraphic, RoleSeparator, RoleMenuItem,
		RoleCheckBox, RoleRadioButton, RoleSlider, RoleProgressBar,
		RoleScrollBar, RoleToolTip, RoleHeading:
		return true
	}
	return false
}

// roleMap maps native role codes (Chromium accessibility / ARIA role
// strings, lower-cased) to the engine taxonomy.
var roleMap = map[string]Role{
	"button":              RoleButton,
	"checkbox":            RoleCheckBox,
	"combobox":            RoleComboBox,
	"textbox":             RoleEdit,
	"textfield":           RoleEdit,
	"searchbox":           RoleEdit,
	"link":                RoleLink,
	"image":               RoleGraphic,
	"img":                 RoleGraphic,
	"graphic":             RoleGraphic,
	"listitem":            RoleListItem,
	"option":              RoleListItem,
	"list":                RoleList,
	"listbox":             RoleList,
	"menu":                RoleMenu,
	"menubar":             RoleMenuBar,
	"menuitem":            RoleMenuItem,
	"menuitemcheckbox":    RoleMenuItem,
	"menuitemradio":       RoleMenuItem,
	"progressbar":         RoleProgressBar,
	"radio":               RoleRadioButton,
	"scrollbar":           RoleScrollBar,
	"slider":              RoleSlider,
	"status":              RoleStatusBar,
	"tablist":             RoleTabControl,
	"tab":                 RoleTab,
	"statictext":          RoleStaticText,
	"text":                RoleStaticText,
	"toolbar":             RoleToolBar,
	"tooltip":             RoleToolTip,
	"tree":                RoleTreeView,
	"treegrid":            RoleTreeView,
	"treeitem":            RoleTreeViewItem,
	"group":               RoleGrouping,
	"genericcontainer":    RoleGrouping,
	"generic":             RoleGrouping,
	"header":              RoleGrouping,
	"grid":                RoleTable,
	"table":               RoleTable,
	"document":            RoleDocument,
	"rootwebarea":         RoleDocument,
	"webarea":             RoleDocument,
	"window":              RoleWindow,
	"pane":                RolePane,
	"region":              RolePane,
	"titlebar":            RoleTitleBar,
	"separator":           RoleSeparator,
	"splitter":            RoleSeparator,
	"heading":             RoleHeading,
	"section":             RoleSection,
	"application":         RoleApplication,
	"alert":               RoleAlert,
	"alertdialog":         RoleAlert,
	"article":             RoleArticle,
	"togglebutton":        RoleToggleButton,
	"switch":              RoleToggleButton,
	"splitbutton":         RoleSplitButton,
	"popupbutton":         RoleSplitButton,
	"disclosuretriangle":  RoleToggleButton,
	"spinbutton":          RoleEdit,
	"contentinfo":         RolePane,
	"navigation":          RolePane,
	"complementary":       RolePane,
	"main":                RolePane,
	"banner":              RolePane,
	"landmark":            RolePane,
	"presentation":        RoleGrouping,
	"paragraph":           RoleStaticText,
	"labeltext":           RoleStaticText,
	"inlinetextbox":       RoleStaticText,
	"form":                RoleGrouping,
	"dialog":              RoleWindow,
	"figure":              RoleGraphic,
	"graphicssymbol":      RoleGraphic,
	"graphicsdocument":    RoleDocument,
	"descriptionlist":     RoleList,
	"descriptionlistterm": RoleListItem,
	"directory":           RoleList,
	"feed":                RoleList,
	"rowgroup":            RoleGrouping,
	"row":                 RoleListItem,
	"cell":                RoleListItem,
	"gridcell":            RoleListItem,
}

// MapRole converts a native role code to the engine taxonomy. Unmapped
// codes (including "") map to RoleUnknown.
func MapRole(native string) Role {
	if r, ok := roleMap[strings.ToLower(native)]; ok {
		return r
	}
	return RoleUnknown
}
