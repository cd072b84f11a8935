package finder

import (
	"sort"

	"chatnav/internal/element"
)

// regionFuncs maps region names, as used by the CLI and the MCP tools,
// to finder methods.
var regionFuncs = map[string]func(*Engine) element.Handle{
	"server-list":   (*Engine).ServerList,
	"channel-list":  (*Engine).ChannelList,
	"message-list":  (*Engine).MessageList,
	"message-input": (*Engine).MessageInput,
	"members":       (*Engine).MembersList,
	"user-area":     (*Engine).UserArea,
	"active-now":    (*Engine).ActiveNow,
	"disconnect":    (*Engine).DisconnectButton,
	"pinned":        (*Engine).PinnedButton,
	"threads":       (*Engine).ThreadsButton,
	"typing":        (*Engine).TypingIndicator,
}

// RegionNames lists the known region names, sorted.
func RegionNames() []string {
	names := make([]string, 0, len(regionFuncs))
	for name := range regionFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindRegion runs the finder for the named region. ok is false for an
// unknown name; a known region that could not be located returns
// (nil, true).
func (e *Engine) FindRegion(name string) (h element.Handle, ok bool) {
	fn, ok := regionFuncs[name]
	if !ok {
		return nil, false
	}
	return fn(e), true
}
